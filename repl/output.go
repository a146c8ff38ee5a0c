package main

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/term"
)

// termWriter wraps a file and converts \n to \r\n when the file is a terminal
// (needed because raw mode disables the kernel's NL→CRNL translation).
// When the file is redirected, \n passes through unchanged.
func termWriter(f *os.File) io.Writer {
	if term.IsTerminal(int(f.Fd())) {
		return &crlfWriter{w: f}
	}
	return f
}

type crlfWriter struct {
	w io.Writer
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	replaced := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	_, err := c.w.Write(replaced)
	return len(p), err // report original length to caller
}

// correction is one accepted replacement, logged as a TOML table.
type correction struct {
	Timestamp  time.Time `toml:"timestamp"`
	Before     string    `toml:"before"`
	After      string    `toml:"after"`
	Word       string    `toml:"word"`
	Candidate  string    `toml:"candidate"`
	Candidates []string  `toml:"candidates"`
	Flags      int       `toml:"flags"`
}

type logEntry struct {
	Correction correction `toml:"correction"`
}

// writeEntry writes a single TOML-formatted correction to w.
func writeEntry(w io.Writer, c correction) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(logEntry{Correction: c})
}
