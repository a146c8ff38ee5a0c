package spell

import (
	"testing"

	"github.com/Paranoid-AF/brailletypo/node"
	"github.com/Paranoid-AF/brailletypo/typo"
)

func TestTokenize(t *testing.T) {
	got := tokenize("teh dog's 'cat', 42 ok")
	want := []token{
		{"teh", 0, 3},
		{"dog's", 4, 9},
		{"cat", 11, 14},
		{"42", 17, 19},
		{"ok", 20, 22},
	}
	if len(got) != len(want) {
		t.Fatalf("tokenize: got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExtractorFlagsMisspellings(t *testing.T) {
	ex := NewExtractor(newTestChecker(t, 5))
	n := &node.Node{Text: "teh cat", Cursor: 7}

	got := ex.SpellingSuggestions(n)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %+v", got)
	}
	sg := got[0]
	if sg.Word != "teh" || sg.Start != 0 || sg.End != 3 {
		t.Errorf("unexpected suggestion range: %+v", sg)
	}
	if sg.Span == nil || sg.Span.Suggestions[0] != "the" {
		t.Fatalf("unexpected span: %+v", sg.Span)
	}
	if sg.Span.Flags&typo.FlagMisspelled == 0 || sg.Span.Flags&typo.FlagEasyCorrect == 0 {
		t.Errorf("expected misspelled|easy-correct flags, got %#x", sg.Span.Flags)
	}
}

func TestExtractorWordAtCursorFirst(t *testing.T) {
	ex := NewExtractor(newTestChecker(t, 5))
	n := &node.Node{Text: "teh cat wich dgo", Cursor: 10}

	got := ex.SpellingSuggestions(n)
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %+v", got)
	}
	order := []string{got[0].Word, got[1].Word, got[2].Word}
	want := []string{"wich", "teh", "dgo"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order: got %v, want %v", order, want)
			break
		}
	}
}

func TestExtractorNilSpanWithoutCandidates(t *testing.T) {
	ex := NewExtractor(newTestChecker(t, 5))
	got := ex.SpellingSuggestions(&node.Node{Text: "xylophone"})
	if len(got) != 1 || got[0].Span != nil {
		t.Errorf("expected one suggestion without span, got %+v", got)
	}
}

func TestExtractorIgnoresForeignTargets(t *testing.T) {
	ex := NewExtractor(newTestChecker(t, 5))
	if got := ex.SpellingSuggestions("text"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestExtractorDrivesFinder(t *testing.T) {
	field := &node.Node{ID: "f", Text: "teh", Cursor: 3, Editable: true, Focused: true, AccessibilityFocused: true}
	tree := node.NewTree(field)
	f := typo.NewFinder(tree, NewExtractor(newTestChecker(t, 5)))

	if !f.Begin(typo.FocusAccessibility) {
		t.Fatal("expected Begin to succeed")
	}
	first, _ := f.Next()
	second, _ := f.Next()
	if first != "the" || second != "tea" {
		t.Errorf("got %q, %q; want the, tea", first, second)
	}
}
