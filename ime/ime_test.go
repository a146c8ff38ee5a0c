package ime

import (
	"testing"

	brailletypo "github.com/Paranoid-AF/brailletypo"
)

func TestFlagReaderDefaultsEnabled(t *testing.T) {
	for _, r := range []*FlagReader{
		NewFlagReader(nil),
		NewFlagReader(&brailletypo.Config{}),
		NewFlagReader(brailletypo.DefaultConfig()),
	} {
		if !r.UseHoldAndSwipeGesture() || !r.UseSelectCurrentToStartOrEnd() {
			t.Errorf("expected all flags enabled, got %v", r.All())
		}
	}
}

func TestFlagReaderHonoursExplicitOff(t *testing.T) {
	off := false
	cfg := brailletypo.DefaultConfig()
	cfg.Features.SelectCurrentToStartOrEnd = &off

	r := NewFlagReader(cfg)
	if r.UseSelectCurrentToStartOrEnd() {
		t.Error("expected select_current_to_start_or_end to be off")
	}
	if !r.UseHoldAndSwipeGesture() {
		t.Error("expected hold_and_swipe_gesture to stay on")
	}
	if all := r.All(); len(all) != 2 || all["select_current_to_start_or_end"] {
		t.Errorf("unexpected All(): %v", all)
	}
}

func TestStartSpellCheckGestureCommandIntentUnsupported(t *testing.T) {
	intent, ok := StartSpellCheckGestureCommandIntent()
	if ok || intent != nil {
		t.Errorf("expected unsupported, got %+v, %v", intent, ok)
	}
}
