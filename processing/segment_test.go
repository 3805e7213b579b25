package processing

import (
	"strings"
	"testing"
)

func TestSegment_BlankLineSeparators(t *testing.T) {
	script := "First paragraph here.\n\nSecond paragraph here.\n\n\nThird one."
	scenes := Segment(script)
	if len(scenes) != 3 {
		t.Fatalf("expected 3 scenes, got %d: %q", len(scenes), scenes)
	}
	if scenes[0] != "First paragraph here." || scenes[2] != "Third one." {
		t.Fatalf("scenes out of order or untrimmed: %q", scenes)
	}
}

func TestSegment_SentenceChunking(t *testing.T) {
	script := "One. Two! Three? Four. Five."
	scenes := Segment(script)
	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d: %q", len(scenes), scenes)
	}
	if scenes[0] != "One. Two! Three?" {
		t.Fatalf("first chunk mismatch: %q", scenes[0])
	}
	if scenes[1] != "Four. Five." {
		t.Fatalf("last chunk mismatch: %q", scenes[1])
	}
}

func TestSegment_ChunksCoverAllSentencesInOrder(t *testing.T) {
	script := "A one. B two. C three. D four. E five. F six. G seven."
	scenes := Segment(script)
	for i, s := range scenes {
		if s == "" {
			t.Fatalf("scene %d is empty", i)
		}
		if n := len(strings.Split(s, ". ")); n > 3 {
			t.Fatalf("scene %d has more than 3 sentences: %q", i, s)
		}
	}
	joined := strings.Join(scenes, " ")
	if joined != script {
		t.Fatalf("chunks do not cover script in order:\n got %q\nwant %q", joined, script)
	}
}

func TestSegment_NoSentenceBoundary(t *testing.T) {
	scenes := Segment("just one fragment with no terminator")
	if len(scenes) != 1 || scenes[0] != "just one fragment with no terminator" {
		t.Fatalf("expected whole script as single scene, got %q", scenes)
	}
}

func TestSegment_EmptyScript(t *testing.T) {
	// Documented boundary behavior: one empty scene. Callers must reject
	// empty scripts before segmenting.
	scenes := Segment("   \n\t ")
	if len(scenes) != 1 || scenes[0] != "" {
		t.Fatalf("expected single empty scene, got %q", scenes)
	}
}

func TestSegment_BlankLinesWindowsNewlinesFallThrough(t *testing.T) {
	// No double-newline: the sentence path handles it.
	script := "Alpha beta. Gamma delta.\nEpsilon zeta."
	scenes := Segment(script)
	if len(scenes) != 1 {
		t.Fatalf("expected 1 scene of 3 sentences, got %d: %q", len(scenes), scenes)
	}
}

func TestExtractKeyword_CapsAtSixWords(t *testing.T) {
	got := ExtractKeyword("one two three four five six seven eight", "")
	if got != "one two three four five six" {
		t.Fatalf("ExtractKeyword = %q, want first six words", got)
	}
}

func TestExtractKeyword_StripsPunctuation(t *testing.T) {
	got := ExtractKeyword("Hello,   world! (42)", "")
	if got != "Hello world 42" {
		t.Fatalf("ExtractKeyword = %q, want %q", got, "Hello world 42")
	}
}

func TestExtractKeyword_FallbackVerbatim(t *testing.T) {
	got := ExtractKeyword("Hi!", "space exploration, rockets")
	if got != "space exploration, rockets" {
		t.Fatalf("ExtractKeyword = %q, want fallback verbatim", got)
	}
}

func TestExtractKeyword_SingleWordNoFallback(t *testing.T) {
	got := ExtractKeyword("Hello", "")
	if got != "Hello" {
		t.Fatalf("ExtractKeyword = %q, want %q", got, "Hello")
	}
}

func TestExtractKeyword_DefaultPhrase(t *testing.T) {
	got := ExtractKeyword("!!! ???", "")
	if got != DefaultKeyword {
		t.Fatalf("ExtractKeyword = %q, want %q", got, DefaultKeyword)
	}
}
