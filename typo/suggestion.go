package typo

// Suggestion span flags, matching the platform's SuggestionSpan bits.
const (
	FlagEasyCorrect    = 0x0001
	FlagMisspelled     = 0x0002
	FlagAutoCorrection = 0x0004
	FlagGrammarError   = 0x0008
)

// SuggestionSpan carries candidate replacements and flag bits for a range of text.
type SuggestionSpan struct {
	Suggestions []string
	Flags       int
}

// SpellingSuggestion is a misspelled range of a target's text.
// Span is nil when the range is flagged but carries no candidates.
type SpellingSuggestion struct {
	Word  string
	Start int // byte offset into the target text
	End   int
	Span  *SuggestionSpan
}
