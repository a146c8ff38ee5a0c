package main

import (
	"strings"
	"testing"
	"time"

	"github.com/Paranoid-AF/brailletypo/spell"
	"github.com/Paranoid-AF/brailletypo/typo"
)

func newTestCorrector(t *testing.T) *corrector {
	t.Helper()
	checker := spell.NewChecker(spell.DefaultDictionary(), 3, time.Minute)
	t.Cleanup(checker.Close)
	return newCorrector(spell.NewExtractor(checker))
}

func TestCorrectorCycleAndAccept(t *testing.T) {
	c := newTestCorrector(t)
	c.edit("teh cat", 3)

	if got := c.step(true); !strings.Contains(got, "teh → the (1/3)") {
		t.Errorf("first step: %q", got)
	}
	if got := c.step(true); !strings.Contains(got, "→ tea (2/3)") {
		t.Errorf("second step: %q", got)
	}
	if got := c.step(false); !strings.Contains(got, "→ the (1/3)") {
		t.Errorf("step back: %q", got)
	}

	entry, ok := c.accept()
	if !ok {
		t.Fatal("expected accept to succeed")
	}
	if entry.After != "the cat" || entry.Before != "teh cat" || entry.Candidate != "the" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if c.field.Cursor != 3 {
		t.Errorf("cursor after accept: got %d, want 3", c.field.Cursor)
	}
	if c.finder.Active() {
		t.Error("expected session to end after accept")
	}
}

func TestCorrectorNoTypo(t *testing.T) {
	c := newTestCorrector(t)
	c.edit("the cat", 7)
	if got := c.step(true); got != "no typo" {
		t.Errorf("got %q, want no typo", got)
	}
	if _, ok := c.accept(); ok {
		t.Error("accept should fail without a session")
	}
}

func TestCorrectorEditEndsSession(t *testing.T) {
	c := newTestCorrector(t)
	c.edit("teh", 3)
	c.step(true)
	c.edit("teh ", 4)
	if c.finder.Active() {
		t.Error("expected edit to end the session")
	}
}

func TestCorrectorAcceptNeedsSelection(t *testing.T) {
	c := newTestCorrector(t)
	c.edit("teh", 3)
	c.finder.Begin(typo.FocusAccessibility)
	if _, ok := c.accept(); ok {
		t.Error("accept should fail before any candidate is selected")
	}
	c.clear()
	if c.finder.Active() {
		t.Error("expected clear to end the session")
	}
}
