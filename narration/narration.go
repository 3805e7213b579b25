// Package narration turns scene text into speech audio with a known
// duration. Synthesis failures are fatal to a run; the pipeline reports
// them with the failing scene index.
package narration

import "context"

// Synthesizer converts text to a playable audio file and reports its
// exact duration in seconds.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, destPath string) (durationSec float64, err error)
}
