package summarize

import (
	"errors"
	"strings"
	"testing"
)

const passage = `The solar system consists of the Sun and the objects that orbit it.
The Sun contains almost all of the mass in the solar system.
Eight planets orbit the Sun, along with dwarf planets, moons, and countless small bodies.
Jupiter is the largest planet and has dozens of moons.
My neighbor painted his fence green last weekend.
Astronomers study the solar system using telescopes and space probes.`

func TestMainIdeaEachAlgorithm(t *testing.T) {
	for _, algorithm := range Algorithms() {
		t.Run(algorithm, func(t *testing.T) {
			got, err := MainIdea(passage, 2, algorithm)
			if err != nil {
				t.Fatal(err)
			}
			if got == "" {
				t.Fatal("empty summary")
			}
			count := len(strings.Split(got, ". "))
			if count > 3 {
				t.Errorf("summary has too many sentences: %q", got)
			}
			// Selected sentences must come from the passage verbatim.
			for _, part := range strings.SplitAfter(got, ".") {
				part = strings.TrimSpace(part)
				if part != "" && !strings.Contains(passage, part) {
					t.Errorf("summary sentence %q not found in passage", part)
				}
			}
		})
	}
}

func TestMainIdeaUnknownAlgorithm(t *testing.T) {
	_, err := MainIdea(passage, 1, "bogus")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestMainIdeaEmptyPassage(t *testing.T) {
	got, err := MainIdea("", 3, DefaultAlgorithm)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("summary of empty passage = %q, want empty", got)
	}
}

func TestMainIdeaSingleSentence(t *testing.T) {
	got, err := MainIdea("Only one sentence here.", 5, "luhn")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Only one sentence here." {
		t.Errorf("summary = %q, want the sole sentence", got)
	}
}

func TestMainIdeaPreservesOriginalOrder(t *testing.T) {
	got, err := MainIdea(passage, 3, "lex_rank")
	if err != nil {
		t.Fatal(err)
	}

	// Whatever was selected must appear in the same relative order as in
	// the passage.
	var positions []int
	for _, part := range strings.SplitAfter(got, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		positions = append(positions, strings.Index(passage, part))
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] < positions[i-1] {
			t.Errorf("sentences out of original order: %q", got)
		}
	}
}

func TestMainIdeaCountClamped(t *testing.T) {
	got, err := MainIdea(passage, 0, "text_rank")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("non-positive count should still yield one sentence")
	}
}

func TestAlgorithmsSorted(t *testing.T) {
	want := []string{"lex_rank", "lsa", "luhn", "text_rank"}
	got := Algorithms()
	if len(got) != len(want) {
		t.Fatalf("Algorithms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Algorithms()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTopSentencesTieBreakByOrder(t *testing.T) {
	sents := []*sentence{
		{text: "first", index: 0},
		{text: "second", index: 1},
		{text: "third", index: 2},
	}
	picked := topSentences(sents, []float64{1, 1, 1}, 2)
	if picked[0].text != "first" || picked[1].text != "second" {
		t.Errorf("tie-break should prefer earlier sentences, got %q then %q", picked[0].text, picked[1].text)
	}
}

func TestTokenizeWordsFiltersStopwords(t *testing.T) {
	got := tokenizeWords("The Sun and the moons of Jupiter")
	for _, token := range got {
		if _, bad := stopwords[token]; bad {
			t.Errorf("stopword %q survived tokenization", token)
		}
	}
	want := map[string]bool{"sun": false, "moons": false, "jupiter": false}
	for _, token := range got {
		if _, ok := want[token]; ok {
			want[token] = true
		}
	}
	for token, seen := range want {
		if !seen {
			t.Errorf("content word %q missing from %v", token, got)
		}
	}
}
