package main

import (
	"fmt"
	"os"
	"testing"
)

func TestResolveSocketPath(t *testing.T) {
	tests := []struct {
		name     string
		envSetup func(t *testing.T)
		expected string
	}{
		{
			name: "BRAILLETYPO_SOCKET",
			envSetup: func(t *testing.T) {
				t.Setenv("BRAILLETYPO_SOCKET", "/custom/brailletypo.sock")
			},
			expected: "/custom/brailletypo.sock",
		},
		{
			name: "XDG_RUNTIME_DIR",
			envSetup: func(t *testing.T) {
				t.Setenv("BRAILLETYPO_SOCKET", "")
				t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
			},
			expected: "/run/user/1000/brailletypo.sock",
		},
		{
			name: "fallback",
			envSetup: func(t *testing.T) {
				t.Setenv("BRAILLETYPO_SOCKET", "")
				t.Setenv("XDG_RUNTIME_DIR", "")
			},
			expected: fmt.Sprintf("/tmp/brailletypo-%d.sock", os.Getuid()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.envSetup(t)
			if got := resolveSocketPath(); got != tt.expected {
				t.Errorf("resolveSocketPath() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BRAILLETYPO_CONFIG_DIR", dir)
	t.Setenv("BRAILLETYPO_DICTIONARY", "")

	if code := checkConfig(); code != 0 {
		t.Errorf("missing config file should validate cleanly, got exit %d", code)
	}

	t.Setenv("BRAILLETYPO_DICTIONARY", dir+"/missing.toml")
	if code := checkConfig(); code != 1 {
		t.Errorf("missing dictionary should fail the check, got exit %d", code)
	}

	if err := os.WriteFile(dir+"/config.json", []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := checkConfig(); code != 1 {
		t.Errorf("malformed config should fail the check, got exit %d", code)
	}
}
