// Package images acquires one still image per scene: a stock photo
// search when configured, a locally rendered placeholder otherwise.
// Image acquisition never aborts a run; every failure degrades to the
// placeholder.
package images

import "context"

// FetchStatus classifies the outcome of a stock image lookup.
type FetchStatus int

const (
	// Found means the image was downloaded to the destination path.
	Found FetchStatus = iota
	// NotFound means the provider answered but had no usable result,
	// or no provider is configured.
	NotFound
	// TransientError means the lookup failed (timeout, non-2xx,
	// malformed response). Recoverable via placeholder.
	TransientError
)

// FetchResult is the explicit outcome of a lookup. Err is set only for
// TransientError.
type FetchResult struct {
	Status FetchStatus
	Err    error
}

// Source is a stock image provider.
type Source interface {
	// Configured reports whether the provider has a credential. An
	// unconfigured source must return NotFound without network calls.
	Configured() bool
	// Fetch looks up one landscape image for the query and writes it to
	// destPath on success.
	Fetch(ctx context.Context, query, destPath string) FetchResult
}

// UsePlaceholder is the fallback transition: anything short of a
// downloaded image means the scene gets a rendered placeholder.
func UsePlaceholder(r FetchResult) bool {
	return r.Status != Found
}
