package processing

import (
	"regexp"
	"strings"
)

// DefaultKeyword is used when a scene yields no usable words and no
// topic keywords were supplied.
const DefaultKeyword = "abstract background"

// sentencesPerScene is the chunk size used when a script has no
// blank-line scene separators.
const sentencesPerScene = 3

// maxKeywordWords caps the image search phrase length.
const maxKeywordWords = 6

var (
	nonAlnumRe    = regexp.MustCompile(`[^A-Za-z0-9\s]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)
)

// Segment splits a script into ordered scene strings. Paragraphs
// separated by blank lines each become one scene; otherwise sentences
// are grouped three at a time. A script with no detectable structure
// comes back as a single scene. An empty script yields one empty
// scene, so callers must reject empty input beforehand.
func Segment(script string) []string {
	script = strings.TrimSpace(script)

	if strings.Contains(script, "\n\n") {
		var parts []string
		for _, p := range strings.Split(script, "\n\n") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}

	var sentences []string
	for _, s := range splitSentences(script) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	var scenes []string
	var chunk []string
	for _, s := range sentences {
		chunk = append(chunk, s)
		if len(chunk) >= sentencesPerScene {
			scenes = append(scenes, strings.Join(chunk, " "))
			chunk = nil
		}
	}
	if len(chunk) > 0 {
		scenes = append(scenes, strings.Join(chunk, " "))
	}

	if len(scenes) == 0 {
		return []string{script}
	}
	return scenes
}

// splitSentences breaks text after `.`, `!` or `?` followed by
// whitespace, keeping the punctuation with the sentence.
func splitSentences(text string) []string {
	matches := sentenceEndRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	var out []string
	start := 0
	for _, m := range matches {
		// m[0] is the punctuation mark, the sentence ends right after it.
		out = append(out, text[start:m[0]+1])
		start = m[1]
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// ExtractKeyword derives a short image search phrase from scene text.
// Scenes with fewer than two usable words fall back to the caller's
// topic keywords; with neither, DefaultKeyword is returned.
func ExtractKeyword(sceneText, fallback string) string {
	cleaned := nonAlnumRe.ReplaceAllString(sceneText, "")
	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))
	words := strings.Fields(cleaned)

	if len(words) < 2 && fallback != "" {
		return fallback
	}
	if len(words) == 0 {
		return DefaultKeyword
	}
	if len(words) > maxKeywordWords {
		words = words[:maxKeywordWords]
	}
	return strings.Join(words, " ")
}
