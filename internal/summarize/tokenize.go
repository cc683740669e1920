package summarize

import (
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

// sentenceTokenizer returns the process-wide English Punkt tokenizer.
// Building one parses embedded training data, so it is created once and
// shared by every call.
func sentenceTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	tokenizerOnce.Do(func() {
		tokenizer, tokenizerErr = english.NewSentenceTokenizer(nil)
	})
	return tokenizer, tokenizerErr
}

// stopwords are excluded from term vectors so function words do not dominate
// sentence similarity.
var stopwords = map[string]struct{}{}

func init() {
	list := "a an and are as at be but by for from has have he her his i if in is it its " +
		"me my not of on or our she so that the their them they this to was we were " +
		"what when which who will with you your had do does did been being than then " +
		"there these those can could would should may might must shall am us him"
	for _, w := range strings.Fields(list) {
		stopwords[w] = struct{}{}
	}
}

var wordSplitPattern = regexp.MustCompile(`[^a-z0-9']+`)

// sentence carries one tokenized sentence through scoring.
type sentence struct {
	text   string
	index  int
	tokens []string           // content words in order, stopwords removed
	tf     map[string]float64 // term frequencies over tokens
	norm   float64            // Euclidean norm of tf
}

// splitSentences breaks passage into scored-ready sentences. Sentences that
// contain no content words are kept (they may still be selected by index
// order) but carry empty term vectors.
func splitSentences(passage string) ([]*sentence, error) {
	tok, err := sentenceTokenizer()
	if err != nil {
		return nil, err
	}

	raw := tok.Tokenize(passage)
	out := make([]*sentence, 0, len(raw))
	for _, s := range raw {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		tokens := tokenizeWords(text)
		sent := &sentence{
			text:   text,
			index:  len(out),
			tokens: tokens,
			tf:     make(map[string]float64, len(tokens)),
		}
		for _, token := range tokens {
			sent.tf[token]++
		}
		var norm float64
		for _, count := range sent.tf {
			norm += count * count
		}
		sent.norm = math.Sqrt(norm)
		out = append(out, sent)
	}
	return out, nil
}

// tokenizeWords lowercases text, splits on non-alphanumeric runs, and drops
// stopwords and single characters.
func tokenizeWords(text string) []string {
	lowered := strings.ToLower(text)
	raw := wordSplitPattern.Split(lowered, -1)
	words := make([]string, 0, len(raw))
	for _, word := range raw {
		word = strings.Trim(word, "'")
		if len(word) < 2 {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		words = append(words, word)
	}
	return words
}

// cosine computes the cosine similarity of two sentence term vectors.
func cosine(a, b *sentence) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tf {
		if other, ok := b.tf[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// documentFrequency counts in how many sentences each term appears.
func documentFrequency(sents []*sentence) map[string]int {
	df := make(map[string]int)
	for _, s := range sents {
		for token := range s.tf {
			df[token]++
		}
	}
	return df
}
