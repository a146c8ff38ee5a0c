// Package typo finds the spelling suggestion attached to the focused text
// field and lets the caller cycle through its candidates.
package typo

import (
	"errors"
	"log/slog"
)

// ErrNoActiveSession is returned by candidate accessors when Begin has not
// succeeded since the last Clear.
var ErrNoActiveSession = errors.New("typo: no active suggestion session; call Begin first")

const unsetIndex = -1

// activeSession holds the state of a successful Begin.
// A nil *activeSession is the empty state.
type activeSession struct {
	target     Target
	suggestion SpellingSuggestion
	candidates []string
	index      int
}

// Finder is a cursor over the suggestion candidates of the focused typo.
// It is not safe for concurrent use.
type Finder struct {
	focus     FocusFinder
	extractor SuggestionExtractor

	session *activeSession
	flags   int
}

// NewFinder creates a Finder backed by the given host capabilities.
func NewFinder(focus FocusFinder, extractor SuggestionExtractor) *Finder {
	return &Finder{focus: focus, extractor: extractor}
}

// Begin drops any existing session and looks up the first spelling
// suggestion of the element holding the given kind of focus.
// It reports whether a non-empty candidate list was found.
func (f *Finder) Begin(kind FocusKind) bool {
	f.Clear()
	switch kind {
	case FocusAccessibility:
		t := f.focus.FindAccessibilityFocus()
		if t == nil ||
			!f.focus.IsFocused(t) ||
			!f.focus.HasAccessibilityFocus(t) ||
			!f.focus.IsEditableText(t) {
			slog.Debug("no editable accessibility focus")
			return false
		}
		return f.obtain(t)
	case FocusInput:
		return f.obtain(f.focus.FindFocus(FocusInput))
	default:
		return false
	}
}

func (f *Finder) obtain(t Target) bool {
	if t == nil {
		return false
	}
	suggestions := f.extractor.SpellingSuggestions(t)
	if len(suggestions) == 0 {
		return false
	}
	first := suggestions[0]
	if first.Span == nil || len(first.Span.Suggestions) == 0 {
		return false
	}
	f.session = &activeSession{
		target:     t,
		suggestion: first,
		candidates: append([]string(nil), first.Span.Suggestions...),
		index:      unsetIndex,
	}
	f.flags = first.Span.Flags
	slog.Debug("typo session started", "word", first.Word, "candidates", len(f.session.candidates))
	return true
}

// Next advances to the next candidate, wrapping to the first.
// The first call after Begin returns the first candidate.
func (f *Finder) Next() (string, error) {
	s := f.session
	if s == nil {
		return "", ErrNoActiveSession
	}
	if s.index == unsetIndex {
		s.index = 0
	} else {
		s.index = (s.index + 1) % len(s.candidates)
	}
	return s.candidates[s.index], nil
}

// Previous steps back to the previous candidate, wrapping to the last.
// The first call after Begin returns the first candidate.
func (f *Finder) Previous() (string, error) {
	s := f.session
	if s == nil {
		return "", ErrNoActiveSession
	}
	if s.index == unsetIndex {
		s.index = 0
	} else {
		s.index--
		if s.index < 0 {
			s.index = len(s.candidates) - 1
		}
	}
	return s.candidates[s.index], nil
}

// Current returns the candidate under the cursor, or "" before any navigation.
func (f *Finder) Current() (string, error) {
	s := f.session
	if s == nil {
		return "", ErrNoActiveSession
	}
	if s.index == unsetIndex {
		return "", nil
	}
	return s.candidates[s.index], nil
}

// Candidates returns a copy of the candidate list.
func (f *Finder) Candidates() ([]string, error) {
	if f.session == nil {
		return nil, ErrNoActiveSession
	}
	return append([]string(nil), f.session.candidates...), nil
}

// Clear ends the session. It is safe to call at any time.
func (f *Finder) Clear() {
	f.session = nil
}

// Active reports whether a session is in progress.
func (f *Finder) Active() bool {
	return f.session != nil
}

// Target returns the element the session was started on, or nil.
func (f *Finder) Target() Target {
	if f.session == nil {
		return nil
	}
	return f.session.target
}

// Suggestion returns the suggestion the session was started on, or nil.
func (f *Finder) Suggestion() *SpellingSuggestion {
	if f.session == nil {
		return nil
	}
	sg := f.session.suggestion
	return &sg
}

// Flags returns the span flags of the current suggestion.
// The value is kept after Clear until the next successful Begin.
func (f *Finder) Flags() int {
	return f.flags
}
