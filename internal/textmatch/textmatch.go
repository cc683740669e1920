// Package textmatch finds the closest candidate for a target string, either
// by spelling similarity or by how the words sound.
//
// Scores are on a 0-100 scale. Spelling comparison uses Jaro-Winkler
// similarity over case-folded input; phonetic comparison runs the same
// scoring over phonetic codes (double metaphone with a soundex fallback).
package textmatch

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/antzucaro/matchr"
	"golang.org/x/text/cases"
)

const (
	// DefaultCutoff is the minimum score for a spelling match.
	DefaultCutoff = 90
	// PhoneticCutoff is the minimum score for a phonetic-code match.
	// Codes are short, so a looser threshold is needed.
	PhoneticCutoff = 70
)

var fold = cases.Fold()

// Score returns the Jaro-Winkler similarity of a and b on a 0-100 scale.
// Comparison is Unicode case-insensitive.
func Score(a, b string) float64 {
	return strutil.Similarity(fold.String(a), fold.String(b), metrics.NewJaroWinkler()) * 100
}

// BestMatch returns the option closest to target, or false if no option
// scores at least DefaultCutoff.
func BestMatch(target string, options []string) (string, bool) {
	return BestMatchCutoff(target, options, DefaultCutoff)
}

// BestMatchCutoff is BestMatch with an explicit minimum score.
func BestMatchCutoff(target string, options []string, cutoff float64) (string, bool) {
	best := ""
	bestScore := -1.0
	for _, option := range options {
		if score := Score(target, option); score > bestScore {
			best = option
			bestScore = score
		}
	}
	if bestScore < cutoff {
		return "", false
	}
	return best, true
}

// PhoneticCode returns a phonetic code for word: the double metaphone
// primary code, its secondary code if the primary is empty, or the soundex
// code as a last resort. Soundex never yields an empty code for non-empty
// alphabetic input.
func PhoneticCode(word string) string {
	primary, secondary := matchr.DoubleMetaphone(word)
	if primary != "" {
		return primary
	}
	if secondary != "" {
		return secondary
	}
	return matchr.Soundex(word)
}

// BestPhoneticMatch finds the option whose phonetic code best matches the
// target's code, scoring codes the same way BestMatch scores spellings but
// with PhoneticCutoff. When several options share the winning code the first
// one in slice order wins; callers should not rely on that tie-break.
func BestPhoneticMatch(target string, options []string) (string, bool) {
	targetCode := PhoneticCode(target)
	codes := make([]string, len(options))
	for i, option := range options {
		codes[i] = PhoneticCode(option)
	}

	bestCode, ok := BestMatchCutoff(targetCode, codes, PhoneticCutoff)
	if !ok {
		return "", false
	}
	for i, code := range codes {
		if code == bestCode {
			return options[i], true
		}
	}
	return "", false
}
