package typo

// FocusKind selects which of the two platform focus concepts a target is
// resolved from.
type FocusKind int

const (
	// FocusAccessibility is the screen reader's focus.
	FocusAccessibility FocusKind = iota + 1
	// FocusInput is the keyboard/input focus.
	FocusInput
)

// String returns the wire name of the focus kind.
func (k FocusKind) String() string {
	switch k {
	case FocusAccessibility:
		return "accessibility"
	case FocusInput:
		return "input"
	default:
		return "unknown"
	}
}

// ParseFocusKind maps a wire name back to a FocusKind. Unknown names return 0.
func ParseFocusKind(s string) FocusKind {
	switch s {
	case "accessibility", "accessibility-focus":
		return FocusAccessibility
	case "input", "input-focus":
		return FocusInput
	default:
		return 0
	}
}

// Target is an opaque reference to a focused UI element owned by the host.
// A nil Target means nothing was resolved.
type Target any

// FocusFinder resolves focused elements in the host's UI tree.
type FocusFinder interface {
	// FindAccessibilityFocus returns the element holding accessibility focus, or nil.
	FindAccessibilityFocus() Target
	// FindFocus returns the element holding the given kind of focus, or nil.
	FindFocus(kind FocusKind) Target
	// IsFocused reports whether t currently holds input focus.
	IsFocused(t Target) bool
	// HasAccessibilityFocus reports whether t currently holds accessibility focus.
	HasAccessibilityFocus(t Target) bool
	// IsEditableText reports whether t is an editable text field.
	IsEditableText(t Target) bool
}

// SuggestionExtractor pulls spelling suggestions out of a target's text.
type SuggestionExtractor interface {
	SpellingSuggestions(t Target) []SpellingSuggestion
}
