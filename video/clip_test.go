package video

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner records ffmpeg invocations and fails on demand.
type fakeRunner struct {
	calls [][]string
	errs  []error // consumed per call, nil entries succeed
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return err
	}
	return nil
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := f.Run(ctx, name, args...); err != nil {
		return nil, err
	}
	return []byte("0"), nil
}

func argString(call []string) string {
	return strings.Join(call, " ")
}

func TestBuildClip_ExactDurationAndCanvas(t *testing.T) {
	fr := &fakeRunner{}
	b := &Builder{Runner: fr, Config: DefaultConfig()}

	if err := b.BuildClip(context.Background(), "scene_0.jpg", "scene_0.mp3", 4.2, "clip_0.mp4"); err != nil {
		t.Fatalf("BuildClip error: %v", err)
	}
	if len(fr.calls) != 1 {
		t.Fatalf("expected 1 ffmpeg call, got %d", len(fr.calls))
	}

	cmd := argString(fr.calls[0])
	if !strings.Contains(cmd, "-t 4.200") {
		t.Fatalf("clip duration not set exactly: %s", cmd)
	}
	if !strings.Contains(cmd, "pad=1280:720") {
		t.Fatalf("clip not padded to canvas: %s", cmd)
	}
	if !strings.Contains(cmd, "force_original_aspect_ratio=decrease") {
		t.Fatalf("aspect ratio not preserved: %s", cmd)
	}
	if !strings.Contains(cmd, "-i scene_0.mp3") {
		t.Fatalf("narration audio not attached: %s", cmd)
	}
}

func TestBuildClip_MinimumDuration(t *testing.T) {
	fr := &fakeRunner{}
	b := &Builder{Runner: fr, Config: DefaultConfig()}

	if err := b.BuildClip(context.Background(), "i.jpg", "a.mp3", 0, "c.mp4"); err != nil {
		t.Fatalf("BuildClip error: %v", err)
	}
	if cmd := argString(fr.calls[0]); !strings.Contains(cmd, "-t 0.100") {
		t.Fatalf("zero duration not floored: %s", cmd)
	}
}

func TestBuildClip_RunnerError(t *testing.T) {
	fr := &fakeRunner{errs: []error{errors.New("boom")}}
	b := &Builder{Runner: fr, Config: DefaultConfig()}

	if err := b.BuildClip(context.Background(), "i.jpg", "a.mp3", 2, "c.mp4"); err == nil {
		t.Fatal("expected error from failing runner")
	}
}
