package media

import (
	"context"
	"errors"
	"testing"
)

type stubRunner struct {
	out []byte
	err error
}

func (s stubRunner) Run(ctx context.Context, name string, args ...string) error {
	return s.err
}

func (s stubRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return s.out, s.err
}

func TestProbeDuration_ParsesOutput(t *testing.T) {
	dur, err := ProbeDuration(context.Background(), stubRunner{out: []byte("4.200000\n")}, "a.mp3")
	if err != nil {
		t.Fatalf("ProbeDuration error: %v", err)
	}
	if dur != 4.2 {
		t.Fatalf("duration = %f, want 4.2", dur)
	}
}

func TestProbeDuration_Garbage(t *testing.T) {
	if _, err := ProbeDuration(context.Background(), stubRunner{out: []byte("N/A")}, "a.mp3"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestProbeDuration_NonPositive(t *testing.T) {
	if _, err := ProbeDuration(context.Background(), stubRunner{out: []byte("0.0")}, "a.mp3"); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestProbeDuration_RunnerError(t *testing.T) {
	if _, err := ProbeDuration(context.Background(), stubRunner{err: errors.New("no ffprobe")}, "a.mp3"); err == nil {
		t.Fatal("expected runner error to propagate")
	}
}
