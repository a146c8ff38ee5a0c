package main

import (
	"fmt"
	"time"

	"github.com/Paranoid-AF/brailletypo/node"
	"github.com/Paranoid-AF/brailletypo/typo"
)

// corrector drives a typo.Finder over the single REPL field.
type corrector struct {
	field  *node.Node
	tree   *node.Tree
	finder *typo.Finder
}

func newCorrector(extractor typo.SuggestionExtractor) *corrector {
	field := &node.Node{ID: "repl", Editable: true, Focused: true, AccessibilityFocused: true}
	tree := node.NewTree(field)
	return &corrector{
		field:  field,
		tree:   tree,
		finder: typo.NewFinder(tree, extractor),
	}
}

// edit syncs the field with the editor. Any edit ends the session.
func (c *corrector) edit(text string, cursor int) {
	c.field.Text = text
	c.field.Cursor = cursor
	c.finder.Clear()
}

// step moves the cursor forward or back, starting a session first if needed.
func (c *corrector) step(forward bool) string {
	if !c.finder.Active() && !c.finder.Begin(typo.FocusInput) {
		return "no typo"
	}
	move := c.finder.Next
	if !forward {
		move = c.finder.Previous
	}
	cand, err := move()
	if err != nil {
		return err.Error()
	}
	return c.describe(cand)
}

func (c *corrector) describe(cand string) string {
	all, _ := c.finder.Candidates()
	pos := 0
	for i, s := range all {
		if s == cand {
			pos = i + 1
			break
		}
	}
	return fmt.Sprintf("%s → %s (%d/%d)", c.finder.Suggestion().Word, cand, pos, len(all))
}

// accept applies the selected candidate. ok is false when nothing is selected.
func (c *corrector) accept() (correction, bool) {
	if !c.finder.Active() {
		return correction{}, false
	}
	cand, err := c.finder.Current()
	if err != nil || cand == "" {
		return correction{}, false
	}
	sg := c.finder.Suggestion()
	all, _ := c.finder.Candidates()
	before := c.field.Text
	if _, err := c.tree.Replace(c.field.ID, sg.Start, sg.End, cand); err != nil {
		return correction{}, false
	}
	entry := correction{
		Timestamp:  time.Now(),
		Before:     before,
		After:      c.field.Text,
		Word:       sg.Word,
		Candidate:  cand,
		Candidates: all,
		Flags:      c.finder.Flags(),
	}
	c.finder.Clear()
	return entry, true
}

func (c *corrector) clear() {
	c.finder.Clear()
}
