// Package numword normalizes numeric input that may arrive as an int, a
// digit string, or an English word-number ("forty-two").
package numword

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/divan/num2words"
	"github.com/donna-legal/word2number"
)

// ErrInvalidNumber reports input with no numeric interpretation.
var ErrInvalidNumber = errors.New("invalid number input")

var (
	digitRun = regexp.MustCompile(`\b\d+\b`)
	zeroWord = regexp.MustCompile(`\b(zero|naught|nought)\b`)
	wordRun  = regexp.MustCompile(`[a-z]+`)

	converterOnce sync.Once
	converter     *word2number.Converter
	converterErr  error
)

// numberVocabulary lists every word allowed in a word-number. Anything
// outside it makes the whole input invalid rather than being silently
// ignored by the converter.
var numberVocabulary = map[string]struct{}{}

func init() {
	list := "zero naught nought one two three four five six seven eight nine ten " +
		"eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen " +
		"twenty thirty forty fifty sixty seventy eighty ninety " +
		"hundred thousand million billion trillion and"
	for _, w := range strings.Fields(list) {
		numberVocabulary[w] = struct{}{}
	}
}

// englishConverter returns the process-wide word-to-number converter.
// Building one loads locale tables, so it is created once and reused.
func englishConverter() (*word2number.Converter, error) {
	converterOnce.Do(func() {
		converter, converterErr = word2number.NewConverter("en")
	})
	return converter, converterErr
}

// Normalize converts v into an int. Ints pass through unchanged; strings go
// through NormalizeString. Anything else is ErrInvalidNumber.
func Normalize(v any) (int, error) {
	switch value := v.(type) {
	case int:
		return value, nil
	case string:
		return NormalizeString(value)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidNumber, v)
	}
}

// NormalizeString parses input as a number. Pure digit strings parse
// directly. Otherwise embedded digit runs are rewritten as English words
// ("3 hundred" becomes "three hundred") and the whole string goes through
// word-to-number conversion. Returns ErrInvalidNumber when no numeric
// interpretation exists.
func NormalizeString(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, input)
	}

	if isDigits(trimmed) {
		value, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, input, err)
		}
		return value, nil
	}

	worded := digitRun.ReplaceAllStringFunc(trimmed, func(run string) string {
		n, err := strconv.Atoi(run)
		if err != nil {
			return run
		}
		return num2words.Convert(n)
	})

	for _, word := range wordRun.FindAllString(worded, -1) {
		if _, ok := numberVocabulary[word]; !ok {
			return 0, fmt.Errorf("%w: %q: unrecognized word %q", ErrInvalidNumber, input, word)
		}
	}

	conv, err := englishConverter()
	if err != nil {
		return 0, fmt.Errorf("load word-number tables: %w", err)
	}

	value := conv.Words2Number(worded)
	// Words2Number reports "no number words found" as 0, which collides with
	// a spelled-out zero; only the latter is a valid parse.
	if value == 0 && !zeroWord.MatchString(worded) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, input)
	}
	return int(value), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
