// Package spell detects misspelled words in a text field and proposes
// replacements for them.
package spell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	defaults "github.com/Paranoid-AF/brailletypo/default"
)

type dictionaryFile struct {
	Words       []string            `toml:"words"`
	Corrections map[string][]string `toml:"corrections"`
}

// Dictionary is a set of known words plus explicit misspelling corrections.
type Dictionary struct {
	words       map[string]bool
	corrections map[string][]string
}

// ParseDictionary decodes a TOML dictionary document.
func ParseDictionary(content string) (*Dictionary, error) {
	var f dictionaryFile
	if _, err := toml.Decode(content, &f); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	return newDictionary(f), nil
}

// LoadDictionary reads a TOML dictionary from path.
func LoadDictionary(path string) (*Dictionary, error) {
	var f dictionaryFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return newDictionary(f), nil
}

// DefaultDictionary returns the embedded English dictionary.
func DefaultDictionary() *Dictionary {
	d, err := ParseDictionary(defaults.DictionaryTOML)
	if err != nil {
		panic("spell: invalid embedded dictionary.toml: " + err.Error())
	}
	return d
}

func newDictionary(f dictionaryFile) *Dictionary {
	d := &Dictionary{
		words:       make(map[string]bool, len(f.Words)),
		corrections: make(map[string][]string, len(f.Corrections)),
	}
	for _, w := range f.Words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			d.words[w] = true
		}
	}
	for typo, repl := range f.Corrections {
		typo = strings.ToLower(strings.TrimSpace(typo))
		if typo == "" || len(repl) == 0 {
			continue
		}
		d.corrections[typo] = append([]string(nil), repl...)
		// replacements are always valid words
		for _, r := range repl {
			d.words[strings.ToLower(r)] = true
		}
	}
	return d
}

// Contains reports whether word (any case) is known.
func (d *Dictionary) Contains(word string) bool {
	return d.words[strings.ToLower(word)]
}

// Corrections returns the explicit replacements for a misspelling, if any.
func (d *Dictionary) Corrections(word string) []string {
	return d.corrections[strings.ToLower(word)]
}

// Words returns all known words, sorted.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of known words.
func (d *Dictionary) Len() int {
	return len(d.words)
}
