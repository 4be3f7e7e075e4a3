package compose

import (
	"regexp"
	"strings"
)

// Raw generative-model output often arrives as several labeled alternatives
// wrapped in markdown and a chatty preamble. Normalize reduces it to the one
// clean paragraph a caption needs.

var (
	// "Option 1:" style labels, with or without emphasis markers.
	optionLabelRe = regexp.MustCompile(`(?i)[*_]{0,3}option\s*\d+\s*:\s*[*_]{0,3}\s*`)

	// A closed set of preamble clauses, anchored at the start and terminated
	// by a colon.
	preambleRe = regexp.MustCompile(`(?i)^(?:here(?: it is| you go|'s [^:\n]{0,80})?|choose [^:\n]{0,80}|response|output|final|options)\s*:\s*`)

	// Leftover "Option N" lines that survive label stripping.
	optionResidueRe = regexp.MustCompile(`(?i)^option\s*\d+\b`)

	bulletLineRe    = regexp.MustCompile(`^\s*[-*•–]\s+`)
	ordinalPrefixRe = regexp.MustCompile(`^\(?\d+[.)]\s+`)

	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
)

const quoteCutset = "\"'`“”‘’«»"

// Normalize turns raw model output into a single clean paragraph: option
// labels and preambles stripped, only the first usable line of the first
// paragraph kept, surrounding quotes and list markers removed. The result is
// a fixpoint: normalizing an already-normalized string returns it unchanged.
// Normalize never truncates; a caller-imposed character budget is a
// generation-time constraint, not a post-hoc cut.
func Normalize(raw string) string {
	s := strings.TrimSpace(optionLabelRe.ReplaceAllString(raw, ""))
	s = stripPreambles(s)
	s = firstParagraph(s)
	s = pickLine(s)
	return trimDecoration(s)
}

func stripPreambles(s string) string {
	for {
		t := strings.TrimSpace(preambleRe.ReplaceAllString(s, ""))
		if t == s {
			return s
		}
		s = t
	}
}

func firstParagraph(s string) string {
	for _, para := range paragraphSplitRe.Split(s, -1) {
		if para = strings.TrimSpace(para); para != "" {
			return para
		}
	}
	return ""
}

// pickLine selects the first line that is neither a list marker nor an
// "Option N" residue, falling back to the first line overall.
func pickLine(para string) string {
	lines := strings.Split(para, "\n")
	if len(lines) == 0 || para == "" {
		return ""
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if bulletLineRe.MatchString(line) || ordinalPrefixRe.MatchString(line) || optionResidueRe.MatchString(line) {
			continue
		}
		return line
	}
	return strings.TrimSpace(lines[0])
}

// trimDecoration peels wrapping quotes, leading bullet and ordinal markers,
// and any preamble a quote layer was hiding, until nothing changes.
func trimDecoration(s string) string {
	for {
		t := strings.TrimSpace(strings.Trim(s, quoteCutset))
		t = strings.TrimSpace(bulletLineRe.ReplaceAllString(t, ""))
		t = strings.TrimSpace(ordinalPrefixRe.ReplaceAllString(t, ""))
		t = stripPreambles(t)
		if t == s {
			return s
		}
		s = t
	}
}
