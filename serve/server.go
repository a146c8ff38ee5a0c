package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"sync"

	brailletypo "github.com/Paranoid-AF/brailletypo"
	"github.com/Paranoid-AF/brailletypo/correct"
)

// Handler processes a correction request and returns a response.
type Handler interface {
	Handle(ctx context.Context, req *brailletypo.Request) *brailletypo.Response
	Flags() map[string]bool
	Close()
}

// sessionEntry tracks a cancellable in-flight request for a session.
type sessionEntry struct {
	requestID int
	cancel    context.CancelFunc
}

// Server listens on a Unix domain socket for correction requests.
type Server struct {
	listener net.Listener
	sockPath string

	mu       sync.Mutex
	handler  Handler
	sessions map[string]sessionEntry
}

// NewServer creates a new IPC server bound to the given socket path.
func NewServer(sockPath string) (*Server, error) {
	return NewServerWithHandler(sockPath, correct.NewEngine())
}

// NewServerWithHandler creates a new IPC server with a custom Handler.
func NewServerWithHandler(sockPath string, handler Handler) (*Server, error) {
	// Remove stale socket file if it exists
	if err := os.Remove(sockPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return nil, err
	}

	return &Server{
		listener: listener,
		sockPath: sockPath,
		handler:  handler,
		sessions: make(map[string]sessionEntry),
	}, nil
}

// Serve accepts connections and handles requests.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

// Close shuts down the server, the handler, and removes the socket file.
func (s *Server) Close() {
	s.mu.Lock()
	s.handler.Close()
	s.mu.Unlock()
	s.listener.Close()
	os.Remove(s.sockPath)
}

func (s *Server) currentHandler() Handler {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handler
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		return
	}

	raw := scanner.Bytes()
	slog.Debug("request", "data", string(raw))

	// Config requests carry "type":"config"
	var cfgReq brailletypo.ConfigRequest
	if err := json.Unmarshal(raw, &cfgReq); err == nil && cfgReq.Type == "config" {
		s.handleConfigRequest(conn, &cfgReq)
		return
	}

	var req brailletypo.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		slog.Warn("invalid request", "error", err)
		return
	}

	// A newer request for the same session supersedes one still waiting.
	ctx, cancel := context.WithCancel(context.Background())
	sid := req.SessionID
	reqID := req.RequestID
	if sid != "" {
		s.mu.Lock()
		if prev, ok := s.sessions[sid]; ok {
			prev.cancel()
		}
		s.sessions[sid] = sessionEntry{requestID: reqID, cancel: cancel}
		s.mu.Unlock()
	}
	defer func() {
		cancel()
		if sid != "" {
			s.mu.Lock()
			if cur, ok := s.sessions[sid]; ok && cur.requestID == reqID {
				delete(s.sessions, sid)
			}
			s.mu.Unlock()
		}
	}()

	resp := s.currentHandler().Handle(ctx, &req)
	resp.RequestID = req.RequestID

	writeJSON(conn, resp)
}

func (s *Server) handleConfigRequest(conn net.Conn, req *brailletypo.ConfigRequest) {
	var resp brailletypo.ConfigResponse

	switch req.Action {
	case "get":
		cfg, err := brailletypo.LoadConfig()
		if err != nil {
			resp.Error = &brailletypo.Error{
				Code:    "config_error",
				Message: err.Error(),
			}
		} else {
			resp.Config = cfg
		}

	case "defaults":
		resp.Config = brailletypo.DefaultConfig()

	case "validate":
		cfg, err := brailletypo.LoadConfig()
		if err != nil {
			resp.Error = &brailletypo.Error{
				Code:    "config_error",
				Message: err.Error(),
			}
		} else {
			resp.Warnings = brailletypo.ValidateConfig(cfg)
		}

	case "flags":
		resp.Flags = s.currentHandler().Flags()

	case "reload":
		// Swap in a fresh engine so dictionary and limits are re-read.
		s.reloadHandler()
		cfg, _ := brailletypo.LoadConfig()
		resp.Config = cfg

	default:
		resp.Error = &brailletypo.Error{
			Code:    "unknown_action",
			Message: "unknown config action: " + req.Action,
		}
	}

	writeJSON(conn, resp)
}

func (s *Server) reloadHandler() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handler != nil {
		s.handler.Close()
	}
	s.handler = correct.NewEngine()
	slog.Info("engine reloaded")
}

func writeJSON(conn net.Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal response", "error", err)
		return
	}

	slog.Debug("response", "data", string(data))

	conn.Write(append(data, '\n'))
}
