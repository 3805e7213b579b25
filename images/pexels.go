package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultPexelsBaseURL = "https://api.pexels.com/v1"

const (
	searchTimeout   = 20 * time.Second
	downloadTimeout = 30 * time.Second
)

// Pexels searches the Pexels photo API for one landscape image per
// query. The API key is passed in explicitly; an empty key marks the
// source unconfigured.
type Pexels struct {
	apiKey  string
	baseURL string

	searchClient   *http.Client
	downloadClient *http.Client
}

// NewPexels builds a Pexels source. apiKey may be empty.
func NewPexels(apiKey string) *Pexels {
	return &Pexels{
		apiKey:         apiKey,
		baseURL:        defaultPexelsBaseURL,
		searchClient:   &http.Client{Timeout: searchTimeout},
		downloadClient: &http.Client{Timeout: downloadTimeout},
	}
}

func (p *Pexels) Configured() bool {
	return p.apiKey != ""
}

// searchResponse mirrors the fields of the Pexels search payload we use.
type searchResponse struct {
	Photos []struct {
		Src struct {
			Original string `json:"original"`
			Large    string `json:"large"`
			Medium   string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// Fetch runs the search and downloads the first result's best rendition
// to destPath.
func (p *Pexels) Fetch(ctx context.Context, query, destPath string) FetchResult {
	if !p.Configured() {
		return FetchResult{Status: NotFound}
	}

	searchURL := fmt.Sprintf("%s/search?query=%s&per_page=1&orientation=landscape",
		p.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return FetchResult{Status: TransientError, Err: err}
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.searchClient.Do(req)
	if err != nil {
		return FetchResult{Status: TransientError, Err: fmt.Errorf("pexels search: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FetchResult{Status: TransientError, Err: fmt.Errorf("pexels search: status %s", resp.Status)}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return FetchResult{Status: TransientError, Err: fmt.Errorf("pexels search: decode: %w", err)}
	}
	if len(sr.Photos) == 0 {
		return FetchResult{Status: NotFound}
	}

	src := sr.Photos[0].Src.Large
	if src == "" {
		src = sr.Photos[0].Src.Medium
	}
	if src == "" {
		src = sr.Photos[0].Src.Original
	}
	if src == "" {
		return FetchResult{Status: NotFound}
	}

	if err := p.download(ctx, src, destPath); err != nil {
		return FetchResult{Status: TransientError, Err: err}
	}
	return FetchResult{Status: Found}
}

func (p *Pexels) download(ctx context.Context, src, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return err
	}

	resp, err := p.downloadClient.Do(req)
	if err != nil {
		return fmt.Errorf("pexels download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pexels download: status %s", resp.Status)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("pexels download: write %s: %w", destPath, err)
	}
	return nil
}
