// Package ime holds the Braille keyboard's feature toggles and platform shims.
package ime

import brailletypo "github.com/Paranoid-AF/brailletypo"

// FlagReader reads experimental feature flags. Every flag is enabled unless
// the config explicitly turns it off.
type FlagReader struct {
	cfg *brailletypo.Config
}

// NewFlagReader returns a reader over cfg. A nil cfg enables everything.
func NewFlagReader(cfg *brailletypo.Config) *FlagReader {
	return &FlagReader{cfg: cfg}
}

// UseHoldAndSwipeGesture reports whether the hold-and-swipe gesture is on.
func (r *FlagReader) UseHoldAndSwipeGesture() bool {
	if r.cfg == nil {
		return true
	}
	return enabled(r.cfg.Features.HoldAndSwipeGesture)
}

// UseSelectCurrentToStartOrEnd reports whether selecting from the cursor to
// the start or end of the field is on.
func (r *FlagReader) UseSelectCurrentToStartOrEnd() bool {
	if r.cfg == nil {
		return true
	}
	return enabled(r.cfg.Features.SelectCurrentToStartOrEnd)
}

// All returns every flag keyed by its config name.
func (r *FlagReader) All() map[string]bool {
	return map[string]bool{
		"hold_and_swipe_gesture":         r.UseHoldAndSwipeGesture(),
		"select_current_to_start_or_end": r.UseSelectCurrentToStartOrEnd(),
	}
}

func enabled(v *bool) bool {
	return v == nil || *v
}
