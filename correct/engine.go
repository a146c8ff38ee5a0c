// Package correct runs typo correction sessions for daemon clients.
package correct

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jellydator/ttlcache/v3"

	brailletypo "github.com/Paranoid-AF/brailletypo"
	"github.com/Paranoid-AF/brailletypo/ime"
	"github.com/Paranoid-AF/brailletypo/node"
	"github.com/Paranoid-AF/brailletypo/spell"
	"github.com/Paranoid-AF/brailletypo/typo"
)

// Actions understood by Handle.
const (
	ActionBegin      = "begin"
	ActionNext       = "next"
	ActionPrevious   = "previous"
	ActionCurrent    = "current"
	ActionCandidates = "candidates"
	ActionClear      = "clear"
	ActionAccept     = "accept"
)

// session is one client's view of its UI plus the cursor over its typo.
type session struct {
	tree   *node.Tree
	finder *typo.Finder
}

// Engine owns the spell checker and every client session.
type Engine struct {
	config  *brailletypo.Config
	checker *spell.Checker
	ex      *spell.Extractor
	flags   *ime.FlagReader

	mu       sync.Mutex // serialises all finder access
	sessions *ttlcache.Cache[string, *session]
}

// NewEngine creates an engine from the on-disk configuration.
func NewEngine() *Engine {
	cfg, err := brailletypo.LoadConfig()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = brailletypo.DefaultConfig()
	}
	return NewEngineWithConfig(cfg)
}

// NewEngineWithConfig creates an engine from cfg.
func NewEngineWithConfig(cfg *brailletypo.Config) *Engine {
	dict := loadDictionary(cfg)
	checker := spell.NewChecker(dict, brailletypo.ResolveMaxCandidates(cfg), brailletypo.CacheTTL(cfg))

	sessions := ttlcache.New[string, *session](
		ttlcache.WithTTL[string, *session](brailletypo.SessionIdleTimeout(cfg)),
	)
	sessions.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *session]) {
		if reason == ttlcache.EvictionReasonExpired {
			slog.Debug("session expired", "session", item.Key())
		}
	})
	go sessions.Start()

	return &Engine{
		config:   cfg,
		checker:  checker,
		ex:       spell.NewExtractor(checker),
		flags:    ime.NewFlagReader(cfg),
		sessions: sessions,
	}
}

func loadDictionary(cfg *brailletypo.Config) *spell.Dictionary {
	path := brailletypo.ResolveDictionaryPath(cfg)
	if path == "" {
		return spell.DefaultDictionary()
	}
	dict, err := spell.LoadDictionary(path)
	if err != nil {
		slog.Warn("failed to load dictionary, using embedded default", "path", path, "error", err)
		return spell.DefaultDictionary()
	}
	slog.Info("loaded dictionary", "path", path, "words", dict.Len())
	return dict
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() *brailletypo.Config {
	return e.config
}

// Flags returns the resolved feature flags.
func (e *Engine) Flags() map[string]bool {
	return e.flags.All()
}

// Close releases resources held by the engine.
func (e *Engine) Close() {
	e.sessions.Stop()
	e.checker.Close()
}

// session returns the client's session. Sessions are only created by begin.
func (e *Engine) session(id string, create bool) *session {
	if item := e.sessions.Get(id); item != nil {
		return item.Value()
	}
	if !create {
		return nil
	}
	tree := node.NewTree()
	s := &session{tree: tree, finder: typo.NewFinder(tree, e.ex)}
	e.sessions.Set(id, s, ttlcache.DefaultTTL)
	return s
}

// Handle runs one request against the client's session.
// A request whose context is cancelled before it acquires the engine lock
// leaves the session untouched.
func (e *Engine) Handle(ctx context.Context, req *brailletypo.Request) *brailletypo.Response {
	if ctx.Err() != nil {
		return errorResponse("cancelled", ctx.Err().Error())
	}
	if req.SessionID == "" {
		return errorResponse("invalid_request", "session_id is required")
	}

	var kind typo.FocusKind
	switch req.Action {
	case ActionBegin:
		if kind = typo.ParseFocusKind(req.FocusKind); kind == 0 {
			return errorResponse("invalid_request", "unknown focus_kind: "+req.FocusKind)
		}
	case ActionNext, ActionPrevious, ActionCurrent, ActionCandidates, ActionClear, ActionAccept:
	default:
		return errorResponse("unknown_action", "unknown action: "+req.Action)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// superseded while waiting for the lock
	if ctx.Err() != nil {
		return errorResponse("cancelled", ctx.Err().Error())
	}

	s := e.session(req.SessionID, req.Action == ActionBegin)
	if s == nil {
		if req.Action == ActionClear {
			return &brailletypo.Response{OK: true}
		}
		return toErrorResponse(typo.ErrNoActiveSession)
	}
	f := s.finder

	var (
		resp = &brailletypo.Response{OK: true}
		err  error
	)
	switch req.Action {
	case ActionBegin:
		s.tree.Reset(toNodes(req.Fields)...)
		resp.OK = f.Begin(kind)
		if resp.OK {
			resp.Candidates, err = f.Candidates()
			resp.Word = f.Suggestion().Word
			resp.Flags = f.Flags()
		}
	case ActionNext:
		resp.Candidate, err = f.Next()
	case ActionPrevious:
		resp.Candidate, err = f.Previous()
	case ActionCurrent:
		resp.Candidate, err = f.Current()
	case ActionCandidates:
		resp.Candidates, err = f.Candidates()
	case ActionClear:
		f.Clear()
	case ActionAccept:
		resp, err = e.accept(s)
	}

	if err != nil {
		return toErrorResponse(err)
	}
	if req.Action != ActionBegin && f.Active() {
		resp.Word = f.Suggestion().Word
		resp.Flags = f.Flags()
	}
	return resp
}

var errNothingSelected = errors.New("no candidate selected; call next or previous first")

// accept writes the current candidate over the misspelled word and ends the session.
func (e *Engine) accept(s *session) (*brailletypo.Response, error) {
	f := s.finder
	candidate, err := f.Current()
	if err != nil {
		return nil, err
	}
	if candidate == "" {
		return nil, errNothingSelected
	}
	target, ok := f.Target().(*node.Node)
	if !ok {
		return nil, errors.New("session target is not a text field")
	}
	sg := f.Suggestion()
	n, err := s.tree.Replace(target.ID, sg.Start, sg.End, candidate)
	if err != nil {
		return nil, err
	}
	slog.Debug("accepted correction", "word", sg.Word, "candidate", candidate, "field", n.ID)
	f.Clear()
	field := toField(n)
	return &brailletypo.Response{OK: true, Candidate: candidate, Word: sg.Word, Field: &field}, nil
}

// SessionCount returns the number of live sessions.
func (e *Engine) SessionCount() int {
	return e.sessions.Len()
}

func toNodes(fields []brailletypo.Field) []*node.Node {
	nodes := make([]*node.Node, len(fields))
	for i, f := range fields {
		nodes[i] = &node.Node{
			ID:                   f.ID,
			Text:                 f.Text,
			Cursor:               f.Cursor,
			Editable:             f.Editable,
			Focused:              f.Focused,
			AccessibilityFocused: f.AccessibilityFocused,
		}
	}
	return nodes
}

func toField(n *node.Node) brailletypo.Field {
	return brailletypo.Field{
		ID:                   n.ID,
		Text:                 n.Text,
		Cursor:               n.Cursor,
		Editable:             n.Editable,
		Focused:              n.Focused,
		AccessibilityFocused: n.AccessibilityFocused,
	}
}

func errorResponse(code, message string) *brailletypo.Response {
	return &brailletypo.Response{Error: &brailletypo.Error{Code: code, Message: message}}
}

func toErrorResponse(err error) *brailletypo.Response {
	switch {
	case errors.Is(err, typo.ErrNoActiveSession):
		return errorResponse("no_active_session", err.Error())
	case errors.Is(err, errNothingSelected):
		return errorResponse("nothing_selected", err.Error())
	default:
		return errorResponse("internal_error", err.Error())
	}
}
