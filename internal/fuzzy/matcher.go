package fuzzy

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold is the minimum score Filter keeps.
const DefaultThreshold = 40

type MatchResult struct {
	Text  string
	Score int
	Index int
}

// Fold lowercases s and strips diacritics so "Blåbär" matches "blabar".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Match scores how well pattern matches text as an in-order subsequence,
// from 0 (no match) to 100 (equal after folding).
func Match(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	p := []rune(Fold(pattern))
	t := []rune(Fold(text))

	if string(p) == string(t) {
		return 100
	}
	if len(p) > len(t) {
		return 0
	}

	positions := subsequence(p, t)
	if positions == nil {
		return 0
	}

	return clamp(score(p, t, positions))
}

// MatchMany scores every text and keeps those at or above threshold, best
// first. Ties keep input order.
func MatchMany(pattern string, texts []string, threshold int) []MatchResult {
	results := make([]MatchResult, 0, len(texts))

	for i, text := range texts {
		s := Match(pattern, text)
		if s >= threshold {
			results = append(results, MatchResult{Text: text, Score: s, Index: i})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Filter returns the texts matching pattern, best first. A blank pattern
// returns texts unchanged.
func Filter(pattern string, texts []string) []string {
	if strings.TrimSpace(pattern) == "" {
		out := make([]string, len(texts))
		copy(out, texts)
		return out
	}

	results := MatchMany(strings.TrimSpace(pattern), texts, DefaultThreshold)
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Text
	}
	return out
}

func subsequence(pattern, text []rune) []int {
	positions := make([]int, 0, len(pattern))
	pi := 0

	for ti := 0; pi < len(pattern) && ti < len(text); ti++ {
		if pattern[pi] == text[ti] {
			positions = append(positions, ti)
			pi++
		}
	}

	if pi < len(pattern) {
		return nil
	}
	return positions
}

func score(pattern, text []rune, positions []int) int {
	pLen := float64(len(pattern))
	tLen := float64(len(text))

	s := 50.0 + (pLen/tLen)*25.0

	if positions[0] == 0 {
		s += 15.0
	}

	run := longestRun(positions)
	s += float64(run) / pLen * 20.0
	s -= float64(len(pattern)-run) * 4.0

	if boundaryRatio(text, positions) >= 0.3 {
		s += 8.0
	}

	s -= (tLen - pLen) * 0.5

	return int(s)
}

func longestRun(positions []int) int {
	best, cur := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 1
		}
	}
	return best
}

// share of matched runes sitting at the start of a word
func boundaryRatio(text []rune, positions []int) float64 {
	n := 0
	for _, pos := range positions {
		if pos == 0 || !unicode.IsLetter(text[pos-1]) && !unicode.IsDigit(text[pos-1]) {
			n++
		}
	}
	return float64(n) / float64(len(positions))
}

func clamp(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
