// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"sort"
	"strings"

	"github.com/oneirolab/oneiro/pkg/models"
)

// minWordLen drops short function words and stray fragments before counting.
const minWordLen = 3

// DefaultStopWords is the built-in stop-word set for word-frequency analysis.
// Callers may pass their own set to WordFrequencies instead.
var DefaultStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "must": true, "shall": true,
	"this": true, "that": true, "these": true, "those": true,
	"and": true, "or": true, "but": true, "if": true, "then": true,
	"for": true, "from": true, "with": true, "about": true, "into": true,
	"to": true, "of": true, "in": true, "on": true, "at": true, "by": true,
	"it": true, "its": true, "which": true, "who": true, "what": true,
	"when": true, "where": true, "how": true, "why": true,
	"not": true, "all": true, "there": true, "very": true,
}

// Tokenize normalizes free text into candidate words: lowercase, split on
// anything that is not a letter or digit, drop stop-words and tokens shorter
// than three runes. Order follows the input text.
func Tokenize(text string, stopWords map[string]bool) []string {
	if stopWords == nil {
		stopWords = DefaultStopWords
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
	out := words[:0]
	for _, w := range words {
		if len([]rune(w)) >= minWordLen && !stopWords[w] {
			out = append(out, w)
		}
	}
	return out
}

// WordFrequencies ranks the most frequent words across all dream titles and
// contents. Ties break by first occurrence in the snapshot, so the ranking is
// stable and reproducible. topN bounds the result; an empty collection yields
// an empty slice.
func WordFrequencies(dreams []models.DreamRecord, stopWords map[string]bool, topN int) []models.WordCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	idx := 0
	for _, d := range dreams {
		for _, w := range Tokenize(d.Title+" "+d.Content, stopWords) {
			if _, ok := counts[w]; !ok {
				firstSeen[w] = idx
				idx++
			}
			counts[w]++
		}
	}

	ranked := make([]models.WordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, models.WordCount{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
