// Package search matches filter queries against short texts such as track
// titles and artist names.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minCoverage is the fraction of a word's trigrams that must appear in the
// text for a fuzzy match.
const minCoverage = 0.5

// Matcher scores texts against a query. The query is split into words and
// every word must match (AND logic). Short words need a substring match;
// longer words also match on trigram coverage, which tolerates typos.
type Matcher struct {
	words    []string
	trigrams []map[string]struct{}
}

// NewMatcher prepares a matcher for query.
func NewMatcher(query string) Matcher {
	words := strings.Fields(Normalize(query))
	m := Matcher{words: words, trigrams: make([]map[string]struct{}, len(words))}
	for i, w := range words {
		m.trigrams[i] = trigrams(w)
	}
	return m
}

// Empty reports whether the query has no words. An empty matcher matches
// everything.
func (m Matcher) Empty() bool { return len(m.words) == 0 }

// Match reports whether text matches every query word.
func (m Matcher) Match(text string) bool { return m.Score(text) > 0 }

// Score returns how well text matches, or 0 when some word does not match.
// Exact substring hits score higher than fuzzy ones.
func (m Matcher) Score(text string) float64 {
	if m.Empty() {
		return 1
	}
	text = Normalize(text)
	var textTris map[string]struct{}

	total := 0.0
	for i, w := range m.words {
		exact := strings.Contains(text, w)
		if len([]rune(w)) <= 3 {
			if !exact {
				return 0
			}
			total += 1.5
			continue
		}
		if textTris == nil {
			textTris = trigrams(text)
		}
		score := coverage(m.trigrams[i], textTris)
		if exact {
			score += 0.5
		} else if score < minCoverage {
			return 0
		}
		total += score
	}
	return total / float64(len(m.words))
}

// Normalize lowercases s and strips diacritics, so "Café" and "cafe" compare
// equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// trigrams returns the rune trigrams of s, padded so prefixes and suffixes
// form their own trigrams.
func trigrams(s string) map[string]struct{} {
	if s == "" {
		return nil
	}
	r := []rune("  " + s + "  ")
	tris := make(map[string]struct{}, len(r))
	for i := 0; i+3 <= len(r); i++ {
		tri := string(r[i : i+3])
		if strings.TrimSpace(tri) != "" {
			tris[tri] = struct{}{}
		}
	}
	return tris
}

// coverage is |query ∩ text| / |query|.
func coverage(query, text map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	n := 0
	for tri := range query {
		if _, ok := text[tri]; ok {
			n++
		}
	}
	return float64(n) / float64(len(query))
}
