package spell

import (
	"unicode"
	"unicode/utf8"

	"github.com/Paranoid-AF/brailletypo/node"
	"github.com/Paranoid-AF/brailletypo/typo"
)

// Extractor implements typo.SuggestionExtractor over *node.Node targets.
type Extractor struct {
	checker *Checker
}

// NewExtractor returns an Extractor backed by checker.
func NewExtractor(checker *Checker) *Extractor {
	return &Extractor{checker: checker}
}

// token is a word in a node's text, as byte offsets.
type token struct {
	text       string
	start, end int
}

// SpellingSuggestions returns one suggestion per misspelled word of the
// target's text. The word at or just before the cursor comes first; the rest
// follow in text order. Words with no candidates carry a nil span.
func (e *Extractor) SpellingSuggestions(t typo.Target) []typo.SpellingSuggestion {
	n, ok := t.(*node.Node)
	if !ok || n == nil {
		return nil
	}

	var suggestions []typo.SpellingSuggestion
	for _, tok := range tokenize(n.Text) {
		if !e.checker.Misspelled(tok.text) {
			continue
		}
		suggestions = append(suggestions, typo.SpellingSuggestion{
			Word:  tok.text,
			Start: tok.start,
			End:   tok.end,
			Span:  e.span(tok.text),
		})
	}
	return orderByCursor(suggestions, n.Cursor)
}

func (e *Extractor) span(word string) *typo.SuggestionSpan {
	candidates := e.checker.Suggest(word)
	if len(candidates) == 0 {
		return nil
	}
	flags := typo.FlagMisspelled
	if e.checker.IsExplicit(word) || e.checker.Distance(word, candidates[0]) <= 1 {
		flags |= typo.FlagEasyCorrect
	}
	return &typo.SuggestionSpan{Suggestions: candidates, Flags: flags}
}

// orderByCursor moves the suggestion closest to the cursor to the front:
// the one containing it, else the last one ending before it.
func orderByCursor(suggestions []typo.SpellingSuggestion, cursor int) []typo.SpellingSuggestion {
	best := -1
	for i, s := range suggestions {
		if s.Start <= cursor && cursor <= s.End {
			best = i
			break
		}
		if s.End <= cursor {
			best = i
		}
	}
	if best <= 0 {
		return suggestions
	}
	out := make([]typo.SpellingSuggestion, 0, len(suggestions))
	out = append(out, suggestions[best])
	out = append(out, suggestions[:best]...)
	out = append(out, suggestions[best+1:]...)
	return out
}

// tokenize splits text into words: runs of letters, digits and inner apostrophes.
func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		inWord := unicode.IsLetter(r) || unicode.IsDigit(r) || (r == '\'' && start >= 0)
		if inWord {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, trimToken(text, start, i))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, trimToken(text, start, len(text)))
	}
	return tokens
}

// trimToken drops trailing apostrophes so "dogs'" yields "dogs".
func trimToken(text string, start, end int) token {
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if r != '\'' {
			break
		}
		end -= size
	}
	return token{text: text[start:end], start: start, end: end}
}
