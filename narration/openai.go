package narration

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Teempact/script-to-video-gen/internal/media"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAI synthesizes speech through the OpenAI TTS endpoint and
// measures the resulting file with ffprobe. Voice and model are fixed
// defaults.
type OpenAI struct {
	client openai.Client
	runner media.Runner
}

// NewOpenAI builds a synthesizer from an explicit API key.
func NewOpenAI(apiKey string, runner media.Runner) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not configured")
	}
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		runner: runner,
	}, nil
}

// Synthesize writes MP3 narration for text to destPath and returns its
// duration in seconds.
func (o *OpenAI) Synthesize(ctx context.Context, text, destPath string) (float64, error) {
	if text == "" {
		return 0, fmt.Errorf("empty narration text")
	}

	resp, err := o.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModelTTS1,
		Voice:          openai.AudioSpeechNewParamsVoiceAlloy,
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return 0, fmt.Errorf("OpenAI TTS error: %w", err)
	}
	defer resp.Body.Close()

	f, err := os.Create(destPath)
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return 0, fmt.Errorf("write narration %s: %w", destPath, err)
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	return media.ProbeDuration(ctx, o.runner, destPath)
}
