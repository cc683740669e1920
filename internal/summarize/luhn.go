package summarize

// Luhn scoring: words frequent across the passage are "significant"; each
// sentence is scored by its densest cluster of significant words, computed
// as significant² / span for every window whose significant words sit at
// most maxGap insignificant words apart.

const luhnMaxGap = 4

func scoreLuhn(sents []*sentence) []float64 {
	freq := make(map[string]float64)
	for _, s := range sents {
		for token, count := range s.tf {
			freq[token] += count
		}
	}

	significant := make(map[string]struct{})
	for token, count := range freq {
		if count >= 2 {
			significant[token] = struct{}{}
		}
	}
	// Short passages may repeat nothing; score on every content word then.
	if len(significant) == 0 {
		for token := range freq {
			significant[token] = struct{}{}
		}
	}

	scores := make([]float64, len(sents))
	for i, s := range sents {
		scores[i] = luhnSentenceScore(s.tokens, significant)
	}
	return scores
}

func luhnSentenceScore(tokens []string, significant map[string]struct{}) float64 {
	positions := make([]int, 0, len(tokens))
	for i, token := range tokens {
		if _, ok := significant[token]; ok {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return 0
	}

	var best float64
	start := 0
	for i := 1; i < len(positions); i++ {
		if positions[i]-positions[i-1] <= luhnMaxGap {
			continue
		}
		// Cluster ended; score it and start the next one.
		best = max(best, clusterScore(positions[start:i]))
		start = i
	}
	best = max(best, clusterScore(positions[start:]))
	return best
}

func clusterScore(cluster []int) float64 {
	span := cluster[len(cluster)-1] - cluster[0] + 1
	n := float64(len(cluster))
	return n * n / float64(span)
}
