package summarize

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// scoreLSA scores sentences by latent semantic analysis: a term-by-sentence
// frequency matrix is decomposed with a thin SVD, and each sentence is
// scored across the concept space (Steinberger-Jezek), weighting each
// concept by its singular value:
//
//	score(s) = sqrt(sum_k (sigma_k * v_ks)^2)
func scoreLSA(sents []*sentence) []float64 {
	n := len(sents)
	scores := make([]float64, n)

	terms := collectTerms(sents)
	if len(terms) == 0 {
		return scores
	}

	a := mat.NewDense(len(terms), n, nil)
	for col, s := range sents {
		for row, term := range terms {
			if count, ok := s.tf[term]; ok {
				a.Set(row, col, count)
			}
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		// Factorization failing on a plain frequency matrix is effectively
		// unreachable; fall back to flat scores rather than erroring.
		return scores
	}

	sigma := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	for col := 0; col < n; col++ {
		var sum float64
		for k := 0; k < len(sigma); k++ {
			weighted := sigma[k] * v.At(col, k)
			sum += weighted * weighted
		}
		scores[col] = math.Sqrt(sum)
	}
	return scores
}

func collectTerms(sents []*sentence) []string {
	seen := make(map[string]struct{})
	for _, s := range sents {
		for token := range s.tf {
			seen[token] = struct{}{}
		}
	}
	terms := make([]string, 0, len(seen))
	for token := range seen {
		terms = append(terms, token)
	}
	sort.Strings(terms)
	return terms
}
