package summarize

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownAlgorithm reports a summarizer name outside the recognized set.
var ErrUnknownAlgorithm = errors.New("unknown summarizer")

// DefaultAlgorithm is used when the caller does not pick one.
const DefaultAlgorithm = "lsa"

// scorer assigns one relevance score per sentence.
type scorer func(sents []*sentence) []float64

var scorers = map[string]scorer{
	"lsa":       scoreLSA,
	"lex_rank":  scoreLexRank,
	"luhn":      scoreLuhn,
	"text_rank": scoreTextRank,
}

// Algorithms lists the recognized summarizer names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(scorers))
	for name := range scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MainIdea extracts the count highest-scoring sentences from passage using
// the named algorithm and returns them joined in original passage order.
// A non-positive count means one sentence. An unrecognized algorithm name
// yields ErrUnknownAlgorithm.
func MainIdea(passage string, count int, algorithm string) (string, error) {
	score, ok := scorers[algorithm]
	if !ok {
		return "", fmt.Errorf("%w %q: choose from %s", ErrUnknownAlgorithm, algorithm, strings.Join(Algorithms(), ", "))
	}

	sents, err := splitSentences(passage)
	if err != nil {
		return "", fmt.Errorf("tokenize passage: %w", err)
	}
	if len(sents) == 0 {
		return "", nil
	}

	if count < 1 {
		count = 1
	}
	if count > len(sents) {
		count = len(sents)
	}

	scores := score(sents)
	picked := topSentences(sents, scores, count)

	parts := make([]string, len(picked))
	for i, s := range picked {
		parts[i] = s.text
	}
	return strings.Join(parts, " "), nil
}

// topSentences returns the count best-scoring sentences in original order.
// Score ties fall back to passage order.
func topSentences(sents []*sentence, scores []float64, count int) []*sentence {
	ranked := make([]*sentence, len(sents))
	copy(ranked, sents)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].index] > scores[ranked[j].index]
	})

	picked := ranked[:count]
	sort.Slice(picked, func(i, j int) bool {
		return picked[i].index < picked[j].index
	})
	return picked
}
