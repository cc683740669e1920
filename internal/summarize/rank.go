package summarize

import "math"

// Graph-centrality scoring shared by lex_rank and text_rank: build a
// sentence-similarity matrix, then run damped power iteration over its
// row-normalized form.

const (
	rankDamping    = 0.85
	rankIterations = 50
	rankTolerance  = 1e-6

	lexRankThreshold = 0.1
)

// scoreLexRank scores sentences by centrality in a tf-idf cosine similarity
// graph, with edges below lexRankThreshold dropped.
func scoreLexRank(sents []*sentence) []float64 {
	n := len(sents)
	df := documentFrequency(sents)
	idf := make(map[string]float64, len(df))
	for token, count := range df {
		idf[token] = math.Log(float64(n+1) / float64(count+1))
	}

	weighted := make([]*sentence, n)
	for i, s := range sents {
		weighted[i] = reweight(s, idf)
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i == j {
				continue
			}
			if sim := cosine(weighted[i], weighted[j]); sim >= lexRankThreshold {
				matrix[i][j] = sim
			}
		}
	}
	return powerIterate(matrix)
}

// scoreTextRank scores sentences by weighted PageRank over token-overlap
// similarity: |shared tokens| / (log len(a) + log len(b)).
func scoreTextRank(sents []*sentence) []float64 {
	n := len(sents)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i != j {
				matrix[i][j] = overlapSimilarity(sents[i], sents[j])
			}
		}
	}
	return powerIterate(matrix)
}

func overlapSimilarity(a, b *sentence) float64 {
	if len(a.tokens) < 2 || len(b.tokens) < 2 {
		return 0
	}
	var shared float64
	for token := range a.tf {
		if _, ok := b.tf[token]; ok {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}
	return shared / (math.Log(float64(len(a.tokens))) + math.Log(float64(len(b.tokens))))
}

// reweight returns a copy of s with tf-idf weights and a recomputed norm.
func reweight(s *sentence, idf map[string]float64) *sentence {
	tf := make(map[string]float64, len(s.tf))
	var norm float64
	for token, count := range s.tf {
		w := count * idf[token]
		if w == 0 {
			continue
		}
		tf[token] = w
		norm += w * w
	}
	return &sentence{text: s.text, index: s.index, tokens: s.tokens, tf: tf, norm: math.Sqrt(norm)}
}

// powerIterate runs damped power iteration over the row-normalized matrix
// and returns the stationary scores. Dangling rows distribute uniformly.
func powerIterate(matrix [][]float64) []float64 {
	n := len(matrix)
	if n == 0 {
		return nil
	}

	rowSums := make([]float64, n)
	for i, row := range matrix {
		for _, w := range row {
			rowSums[i] += w
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < rankIterations; iter++ {
		base := (1 - rankDamping) / float64(n)
		for j := range next {
			next[j] = base
		}
		for i, row := range matrix {
			if rowSums[i] == 0 {
				share := rankDamping * scores[i] / float64(n)
				for j := range next {
					next[j] += share
				}
				continue
			}
			for j, w := range row {
				if w != 0 {
					next[j] += rankDamping * scores[i] * w / rowSums[i]
				}
			}
		}

		var delta float64
		for i := range scores {
			delta += math.Abs(next[i] - scores[i])
		}
		copy(scores, next)
		if delta < rankTolerance {
			break
		}
	}
	return scores
}
