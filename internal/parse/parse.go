// Package parse splits generated text into individual post variations.
// The splitter is total: any input, including garbage, produces a valid
// result and never an error.
package parse

import (
	"regexp"
	"strings"
)

// Kind tells whether marker-based splitting succeeded.
type Kind int

const (
	// Unstructured means no variation markers were found and the whole
	// text is returned as a single entry.
	Unstructured Kind = iota
	// Structured means the text was split on **POST X** markers.
	Structured
)

// Entry is one post variation extracted from generated text.
type Entry struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// Result carries the extracted entries plus the raw input.
type Result struct {
	Kind    Kind    `json:"-"`
	Entries []Entry `json:"entries"`
	Raw     string  `json:"-"`
}

// GenericLabel names the single entry produced for unmarked text.
const GenericLabel = "Generated Post"

// Matches **POST A**, **POST B - CONTRARIAN TRUTH:**, and similar forms.
var postMarker = regexp.MustCompile(`\*\*POST ([A-Z])\b[^\n]*`)

// Posts extracts post variations from generated text. Text carrying
// **POST X** markers yields one entry per marker, labeled by its letter
// and in input order. Text without markers yields exactly one entry with
// GenericLabel and the full text as content.
func Posts(text string) Result {
	locs := postMarker.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return Result{
			Kind:    Unstructured,
			Entries: []Entry{{Label: GenericLabel, Content: strings.TrimSpace(text)}},
			Raw:     text,
		}
	}

	entries := make([]Entry, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		label := text[loc[2]:loc[3]]
		content := strings.TrimSpace(text[loc[1]:end])
		entries = append(entries, Entry{Label: label, Content: content})
	}
	return Result{Kind: Structured, Entries: entries, Raw: text}
}
