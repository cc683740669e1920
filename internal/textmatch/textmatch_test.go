package textmatch

import "testing"

func TestBestMatch(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		options []string
		want    string
		wantOK  bool
	}{
		{
			name:    "close misspelling",
			target:  "aple",
			options: []string{"apple", "orange", "grape"},
			want:    "apple",
			wantOK:  true,
		},
		{
			name:    "exact match",
			target:  "orange",
			options: []string{"apple", "orange", "grape"},
			want:    "orange",
			wantOK:  true,
		},
		{
			name:    "case insensitive",
			target:  "FIREFOX",
			options: []string{"firefox", "chromium"},
			want:    "firefox",
			wantOK:  true,
		},
		{
			name:    "nothing close enough",
			target:  "zzz",
			options: []string{"apple", "orange"},
			wantOK:  false,
		},
		{
			name:    "no options",
			target:  "apple",
			options: nil,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestMatch(tt.target, tt.options)
			if ok != tt.wantOK {
				t.Fatalf("BestMatch() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("BestMatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	if got := Score("apple", "apple"); got != 100 {
		t.Errorf("Score(identical) = %v, want 100", got)
	}
	if got := Score("zzz", "apple"); got != 0 {
		t.Errorf("Score(disjoint) = %v, want 0", got)
	}
}

func TestPhoneticCodeNonEmpty(t *testing.T) {
	words := []string{"night", "knight", "smith", "smyth", "a", "catherine"}
	for _, word := range words {
		if code := PhoneticCode(word); code == "" {
			t.Errorf("PhoneticCode(%q) = empty", word)
		}
	}
}

func TestPhoneticCodeHomophones(t *testing.T) {
	pairs := [][2]string{
		{"night", "knight"},
		{"smith", "smyth"},
	}
	for _, pair := range pairs {
		a, b := PhoneticCode(pair[0]), PhoneticCode(pair[1])
		if a != b {
			t.Errorf("PhoneticCode(%q)=%q != PhoneticCode(%q)=%q", pair[0], a, pair[1], b)
		}
	}
}

func TestBestPhoneticMatch(t *testing.T) {
	got, ok := BestPhoneticMatch("nite", []string{"knight", "daylight", "banana"})
	if !ok {
		t.Fatal("expected a phonetic match for nite")
	}
	if got != "knight" {
		t.Errorf("BestPhoneticMatch() = %q, want %q", got, "knight")
	}
}

func TestBestPhoneticMatchNone(t *testing.T) {
	if got, ok := BestPhoneticMatch("xylophone", []string{"cat", "dog"}); ok {
		t.Errorf("expected no match, got %q", got)
	}
}

func TestBestPhoneticMatchTieBreak(t *testing.T) {
	// smith and smyth share a code; the first in slice order wins.
	got, ok := BestPhoneticMatch("smith", []string{"smyth", "smith"})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "smyth" {
		t.Errorf("tie-break returned %q, want first option %q", got, "smyth")
	}
}
