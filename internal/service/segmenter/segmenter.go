// Package segmenter turns one opaque block of generated report prose into
// an ordered sequence of {insight, suggestion} pairs. The input is whatever
// a language model produced: numbered lists, markdown emphasis, "Suggestion"
// labels in assorted casings, or none of that. Parsing is a fixed chain of
// total strategies applied in priority order, so the segmenter never fails
// on unstructured input; at worst it yields no segments.
package segmenter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
)

var (
	// A section starts at a run of blank lines or right before a numbered
	// list marker at the start of a line.
	blankLineRun   = regexp.MustCompile(`\n{2,}`)
	numberedMarker = regexp.MustCompile(`(?m)^\s*\d+\.`)

	// One leading ordinal or bullet marker per section.
	leadingMarker = regexp.MustCompile(`^\s*(?:-?\d+\.|\*)\s*`)

	// "**UX Suggestion:** ..." and its variants: optional emphasis, optional
	// "UX"/"UX-" prefix, optional plural, ASCII or full-width colon.
	suggestionPair = regexp.MustCompile(`(?is)^(.*?)(?:\*{1,2}|_)?\s*(?:UX[-\s]?)?Suggestions?\s*[:：]\s*(?:\*{1,2}|_)?\s*(.+)$`)

	// Line-scan fallback: any line carrying the word "suggestion".
	suggestionLine = regexp.MustCompile(`(?i)suggestions?\s*:?`)
)

// Segment partitions report text into ordered {insight, suggestion} pairs.
// Output order equals section order in the input; sections where both
// fields come out empty are discarded.
func Segment(text string) []entity.Segment {
	segments := make([]entity.Segment, 0)

	for _, section := range splitSections(text) {
		section = leadingMarker.ReplaceAllString(section, "")
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		insight, suggestion := extractPair(section)
		if suggestion == "" && insight != "" {
			insight, suggestion = splitSentence(insight)
		}

		insight = strings.TrimSpace(insight)
		suggestion = strings.TrimSpace(suggestion)
		if insight == "" && suggestion == "" {
			continue
		}
		segments = append(segments, entity.Segment{Insight: insight, Suggestion: suggestion})
	}

	return segments
}

// splitSections cuts the text on blank-line runs, then again immediately
// before every numbered-list marker, preserving order and dropping
// whitespace-only pieces.
func splitSections(text string) []string {
	var sections []string
	for _, chunk := range blankLineRun.Split(text, -1) {
		for _, part := range splitBeforeMarkers(chunk) {
			if strings.TrimSpace(part) != "" {
				sections = append(sections, part)
			}
		}
	}
	return sections
}

func splitBeforeMarkers(chunk string) []string {
	locs := numberedMarker.FindAllStringIndex(chunk, -1)
	if len(locs) == 0 {
		return []string{chunk}
	}

	var parts []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			parts = append(parts, chunk[prev:loc[0]])
		}
		prev = loc[0]
	}
	parts = append(parts, chunk[prev:])
	return parts
}

// extractPair applies the structured "Suggestion:" pattern first and falls
// back to a per-line scan when the pattern finds nothing.
func extractPair(section string) (insight, suggestion string) {
	if m := suggestionPair.FindStringSubmatch(section); m != nil && strings.TrimSpace(m[2]) != "" {
		insight = trimEmphasis(m[1])
		suggestion = strings.TrimSpace(m[2])
		return insight, suggestion
	}

	var insightLines []string
	for _, line := range strings.Split(section, "\n") {
		if suggestionLine.MatchString(line) {
			// Last matching line wins.
			suggestion = strings.TrimSpace(afterColon(line))
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			insightLines = append(insightLines, trimmed)
		}
	}
	return strings.Join(insightLines, " "), suggestion
}

func afterColon(line string) string {
	if i := strings.IndexAny(line, ":："); i >= 0 {
		_, size := utf8.DecodeRuneInString(line[i:])
		return line[i+size:]
	}
	return ""
}

// splitSentence is the last fallback: when a section has an insight but no
// suggestion, a sentence boundary (". " not followed by a lowercase letter)
// splits it in two. The first sentence keeps its period and becomes the
// insight; the rest becomes the suggestion.
func splitSentence(insight string) (string, string) {
	parts := sentenceParts(insight)
	if len(parts) < 2 {
		return insight, ""
	}
	return parts[0] + ".", strings.Join(parts[1:], ". ")
}

func sentenceParts(text string) []string {
	var parts []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != '.' || runes[i+1] != ' ' {
			continue
		}
		next := i + 2
		if next < len(runes) && unicode.IsLower(runes[next]) {
			continue
		}
		parts = append(parts, string(runes[start:i]))
		start = next
	}
	parts = append(parts, string(runes[start:]))
	return parts
}

func trimEmphasis(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "*_-•: \t")
}
