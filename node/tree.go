// Package node models the focusable text fields a host exposes to the typo
// finder. A Tree stands in for the platform's accessibility tree.
package node

import (
	"fmt"
	"sync"

	"github.com/Paranoid-AF/brailletypo/typo"
)

// Node is a single UI element.
type Node struct {
	ID                   string
	Text                 string
	Cursor               int // byte offset into Text
	Editable             bool
	Focused              bool
	AccessibilityFocused bool
}

// Tree is a flat set of nodes with at most one holder of each focus kind.
type Tree struct {
	mu    sync.RWMutex
	nodes []*Node
}

// NewTree creates a tree from the given nodes. Cursors are clamped to the text.
func NewTree(nodes ...*Node) *Tree {
	t := &Tree{}
	for _, n := range nodes {
		t.Add(n)
	}
	return t
}

// Add appends n to the tree.
func (t *Tree) Add(n *Node) {
	n.Cursor = clamp(n.Cursor, 0, len(n.Text))
	t.mu.Lock()
	t.nodes = append(t.nodes, n)
	t.mu.Unlock()
}

// Reset replaces every node in the tree.
func (t *Tree) Reset(nodes ...*Node) {
	for _, n := range nodes {
		n.Cursor = clamp(n.Cursor, 0, len(n.Text))
	}
	t.mu.Lock()
	t.nodes = append([]*Node(nil), nodes...)
	t.mu.Unlock()
}

// Get returns the node with the given ID, or nil.
func (t *Tree) Get(id string) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, n := range t.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Nodes returns the nodes in insertion order.
func (t *Tree) Nodes() []*Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*Node(nil), t.nodes...)
}

// Replace swaps Text[start:end] of node id for text and puts the cursor after it.
func (t *Tree) Replace(id string, start, end int, text string) (*Node, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var n *Node
	for _, c := range t.nodes {
		if c.ID == id {
			n = c
			break
		}
	}
	if n == nil {
		return nil, fmt.Errorf("node %q not found", id)
	}
	if start < 0 || end > len(n.Text) || start > end {
		return nil, fmt.Errorf("range [%d,%d) out of bounds for node %q", start, end, id)
	}
	n.Text = n.Text[:start] + text + n.Text[end:]
	n.Cursor = start + len(text)
	return n, nil
}

func (t *Tree) find(match func(*Node) bool) typo.Target {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, n := range t.nodes {
		if match(n) {
			return n
		}
	}
	// untyped nil so callers can compare against nil
	return nil
}

// FindAccessibilityFocus implements typo.FocusFinder.
func (t *Tree) FindAccessibilityFocus() typo.Target {
	return t.find(func(n *Node) bool { return n.AccessibilityFocused })
}

// FindFocus implements typo.FocusFinder.
func (t *Tree) FindFocus(kind typo.FocusKind) typo.Target {
	switch kind {
	case typo.FocusAccessibility:
		return t.FindAccessibilityFocus()
	case typo.FocusInput:
		return t.find(func(n *Node) bool { return n.Focused })
	default:
		return nil
	}
}

// IsFocused implements typo.FocusFinder.
func (t *Tree) IsFocused(target typo.Target) bool {
	n, ok := target.(*Node)
	return ok && n.Focused
}

// HasAccessibilityFocus implements typo.FocusFinder.
func (t *Tree) HasAccessibilityFocus(target typo.Target) bool {
	n, ok := target.(*Node)
	return ok && n.AccessibilityFocused
}

// IsEditableText implements typo.FocusFinder.
func (t *Tree) IsEditableText(target typo.Target) bool {
	n, ok := target.(*Node)
	return ok && n.Editable
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
