// Command brailletypo-repl is an interactive field for trying typo correction.
// Type into the field, press Tab / Shift-Tab to cycle the candidates for the
// misspelling at the cursor, Enter to accept, Ctrl-X to drop the session.
// Accepted corrections are written to stdout as TOML.
//
// Usage:
//
//	./brailletypo-repl              # interactive, TOML on screen
//	./brailletypo-repl > log.toml   # field on screen, TOML to file
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	brailletypo "github.com/Paranoid-AF/brailletypo"
	"github.com/Paranoid-AF/brailletypo/spell"
)

const prompt = "> "

func main() {
	cfg, err := brailletypo.LoadConfig()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = brailletypo.DefaultConfig()
	}

	dict := spell.DefaultDictionary()
	if path := brailletypo.ResolveDictionaryPath(cfg); path != "" {
		if d, err := spell.LoadDictionary(path); err == nil {
			dict = d
		} else {
			slog.Warn("failed to load dictionary, using embedded default", "error", err)
		}
	}
	checker := spell.NewChecker(dict, brailletypo.ResolveMaxCandidates(cfg), brailletypo.CacheTTL(cfg))
	defer checker.Close()

	editor, err := NewEditor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer editor.Close()

	tty := editor.Tty()
	fmt.Fprintf(tty, "\033[2J\033[H") // clear screen
	fmt.Fprintf(tty, "brailletypo repl (%d words)\r\n", dict.Len())
	fmt.Fprintf(tty, "\r\nkeys:\r\n")
	fmt.Fprintf(tty, "  Tab / Shift-Tab  next / previous candidate\r\n")
	fmt.Fprintf(tty, "  Enter            accept candidate, or start a new line\r\n")
	fmt.Fprintf(tty, "  Ctrl-X           drop suggestions\r\n")
	fmt.Fprintf(tty, "  Ctrl-C           exit\r\n\r\n")

	// stdout writer: converts \n → \r\n when stdout is a terminal (raw mode),
	// passes \n through unchanged when redirected to a file.
	out := termWriter(os.Stdout)

	c := newCorrector(spell.NewExtractor(checker))
	status := ""

	for {
		ev, err := editor.ReadEvent(prompt, status)
		if err == io.EOF || err == ErrInterrupt {
			break
		}
		if err != nil {
			fmt.Fprintf(tty, "read error: %v\r\n", err)
			break
		}

		switch ev {
		case EventEdit:
			c.edit(editor.Text(), editor.Cursor())
			status = ""
		case EventNext:
			status = c.step(true)
		case EventPrevious:
			status = c.step(false)
		case EventClear:
			c.clear()
			status = ""
		case EventAccept:
			if entry, ok := c.accept(); ok {
				editor.SetText(c.field.Text, c.field.Cursor)
				status = ""
				fmt.Fprintf(tty, "\r\x1b[K")
				if err := writeEntry(out, entry); err != nil {
					slog.Warn("failed to write correction", "error", err)
				}
				continue
			}
			fmt.Fprintf(tty, "\r\n")
			editor.SetText("", 0)
			c.edit("", 0)
			status = ""
		}
	}
}
