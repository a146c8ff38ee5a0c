package spell

import (
	"reflect"
	"slices"
	"testing"
	"time"
)

func newTestChecker(t *testing.T, maxCandidates int) *Checker {
	t.Helper()
	d, err := ParseDictionary(testDictionary)
	if err != nil {
		t.Fatal(err)
	}
	c := NewChecker(d, maxCandidates, time.Minute)
	t.Cleanup(c.Close)
	return c
}

func TestCheckerMisspelled(t *testing.T) {
	c := newTestChecker(t, 5)
	tests := []struct {
		word string
		want bool
	}{
		{"the", false},
		{"The", false},
		{"teh", true},
		{"x", false},
		{"abc123", false},
		{"cat'", false},
	}
	for _, tt := range tests {
		if got := c.Misspelled(tt.word); got != tt.want {
			t.Errorf("Misspelled(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestCheckerExplicitCorrectionsFirst(t *testing.T) {
	c := newTestChecker(t, 5)
	got := c.Suggest("teh")
	if len(got) < 2 || got[0] != "the" || got[1] != "tea" {
		t.Errorf("Suggest(teh) = %v, want [the tea ...]", got)
	}
}

func TestCheckerRespectsMaxCandidates(t *testing.T) {
	c := newTestChecker(t, 1)
	got := c.Suggest("teh")
	if !reflect.DeepEqual(got, []string{"the"}) {
		t.Errorf("Suggest(teh) = %v, want [the]", got)
	}
}

func TestCheckerGraphSuggestion(t *testing.T) {
	c := newTestChecker(t, 5)
	got := c.Suggest("dgo")
	if len(got) == 0 || got[0] != "dog" {
		t.Errorf("Suggest(dgo) = %v, want dog first", got)
	}
}

// swapTypos transposes the second and third letters of every dictionary word
// with at least four letters, skipping swaps that produce a known word.
func swapTypos(d *Dictionary) map[string]string {
	typos := make(map[string]string)
	for _, w := range d.Words() {
		r := []rune(w)
		if len(r) < 4 || r[1] == r[2] {
			continue
		}
		r[1], r[2] = r[2], r[1]
		typo := string(r)
		if d.Contains(typo) || len(d.Corrections(typo)) > 0 {
			continue
		}
		typos[typo] = w
	}
	return typos
}

func TestCheckerFindsEveryTransposition(t *testing.T) {
	d := DefaultDictionary()
	c := NewChecker(d, 100, time.Minute)
	t.Cleanup(c.Close)

	typos := swapTypos(d)
	if len(typos) < 100 {
		t.Fatalf("expected a broad sample of typos, got %d", len(typos))
	}
	var missed []string
	for typo, want := range typos {
		if !slices.Contains(c.Suggest(typo), want) {
			missed = append(missed, typo+" -> "+want)
		}
	}
	if len(missed) > 0 {
		slices.Sort(missed)
		t.Errorf("%d of %d transpositions lost their original word: %v", len(missed), len(typos), missed)
	}
}

func TestCheckerSuggestionsAreReproducible(t *testing.T) {
	d := DefaultDictionary()
	a := NewChecker(d, DefaultMaxCandidates, time.Minute)
	b := NewChecker(d, DefaultMaxCandidates, time.Minute)
	t.Cleanup(a.Close)
	t.Cleanup(b.Close)

	for typo := range swapTypos(d) {
		if ga, gb := a.Suggest(typo), b.Suggest(typo); !reflect.DeepEqual(ga, gb) {
			t.Errorf("Suggest(%q) differs between checkers: %v vs %v", typo, ga, gb)
		}
	}
}

func TestCheckerTranspositionRanksFirst(t *testing.T) {
	c := NewChecker(DefaultDictionary(), DefaultMaxCandidates, time.Minute)
	t.Cleanup(c.Close)

	for typo, want := range map[string]string{"ctiy": "city", "crae": "care", "bieng": "being"} {
		got := c.Suggest(typo)
		if len(got) == 0 || got[0] != want {
			t.Errorf("Suggest(%q) = %v, want %q first", typo, got, want)
		}
	}
}

func TestCheckerNoCandidatesForDistantWord(t *testing.T) {
	c := newTestChecker(t, 5)
	if got := c.Suggest("xylophone"); len(got) != 0 {
		t.Errorf("Suggest(xylophone) = %v, want none", got)
	}
}

func TestCheckerMatchesCase(t *testing.T) {
	c := newTestChecker(t, 5)
	if got := c.Suggest("Teh"); len(got) == 0 || got[0] != "The" {
		t.Errorf("Suggest(Teh) = %v, want The first", got)
	}
	if got := c.Suggest("TEH"); len(got) == 0 || got[0] != "THE" {
		t.Errorf("Suggest(TEH) = %v, want THE first", got)
	}
	// cached lower-case result must not be mutated by case matching
	if got := c.Suggest("teh"); got[0] != "the" {
		t.Errorf("Suggest(teh) after cased lookups = %v", got)
	}
}

func TestCheckerCachesResults(t *testing.T) {
	c := newTestChecker(t, 5)
	c.Suggest("teh")
	if item := c.cache.Get("teh"); item == nil {
		t.Fatal("expected cached entry for teh")
	}
}

func TestVectorizeNormalised(t *testing.T) {
	for _, w := range []string{"a", "the", "tomorrow", ""} {
		v := vectorize(w)
		var sum float64
		for _, x := range v {
			sum += float64(x * x)
		}
		if sum < 0.99 || sum > 1.01 {
			t.Errorf("vectorize(%q) norm^2 = %f, want 1", w, sum)
		}
	}
}
