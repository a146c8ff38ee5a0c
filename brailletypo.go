// Package brailletypo defines the request/response types for the typo
// correction daemon. Messages are JSON-encoded and sent over a Unix domain
// socket, one per line.
package brailletypo

// Request is sent from the input method to the daemon.
type Request struct {
	// RequestID is a per-session incrementing identifier assigned by the client.
	// The daemon echoes it back in the response for ordering.
	RequestID int `json:"request_id"`
	// SessionID identifies the client. Each session owns its own cursor.
	SessionID string `json:"session_id"`
	// Action is one of "begin", "next", "previous", "current", "candidates",
	// "clear" or "accept".
	Action string `json:"action"`
	// FocusKind is "accessibility" or "input". Only used by "begin".
	FocusKind string `json:"focus_kind,omitempty"`
	// Fields is the current state of the client's UI. Only used by "begin".
	Fields []Field `json:"fields,omitempty"`
}

// Field is a snapshot of one UI element.
type Field struct {
	ID                   string `json:"id"`
	Text                 string `json:"text"`
	Cursor               int    `json:"cursor"`
	Editable             bool   `json:"editable,omitempty"`
	Focused              bool   `json:"focused,omitempty"`
	AccessibilityFocused bool   `json:"accessibility_focused,omitempty"`
}

// Response is sent from the daemon back to the client.
type Response struct {
	// RequestID is echoed from the request for ordering on the client side.
	RequestID int `json:"request_id"`
	// OK is the result of "begin"; true for other successful actions.
	OK bool `json:"ok"`
	// Candidate is the candidate under the cursor after the action.
	Candidate string `json:"candidate,omitempty"`
	// Candidates is the full candidate list ("begin" and "candidates").
	Candidates []string `json:"candidates,omitempty"`
	// Word is the misspelled word the session is correcting.
	Word string `json:"word,omitempty"`
	// Flags are the suggestion span flags of the session.
	Flags int `json:"flags,omitempty"`
	// Field is the corrected field after "accept".
	Field *Field `json:"field,omitempty"`
	// Error is set when the daemon cannot fulfill the request.
	Error *Error `json:"error,omitempty"`
}

// Error describes a daemon-side error returned to the client.
type Error struct {
	// Code is a machine-readable error identifier (e.g. "no_active_session").
	Code string `json:"code"`
	// Message is a human-readable error description.
	Message string `json:"message"`
}

// ConfigRequest is sent from the client for configuration operations.
type ConfigRequest struct {
	// Type is always "config".
	Type string `json:"type"`
	// Action is the config operation: "get", "defaults", "validate", "flags" or
	// "reload".
	Action string `json:"action"`
}

// ConfigResponse is sent from the daemon in response to a ConfigRequest.
type ConfigResponse struct {
	// Config is the current configuration (for "get" and "defaults").
	Config *Config `json:"config,omitempty"`
	// Warnings contains configuration warnings (for "validate").
	Warnings []string `json:"warnings,omitempty"`
	// Flags holds the resolved feature flags (for "flags").
	Flags map[string]bool `json:"flags,omitempty"`
	// Error is set when the operation fails.
	Error *Error `json:"error,omitempty"`
}
