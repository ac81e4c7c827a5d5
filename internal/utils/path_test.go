package utils

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in, want string
	}{
		{"~", "/home/tester"},
		{"~/.config/dayboard/dayboard.db", filepath.Join("/home/tester", ".config/dayboard/dayboard.db")},
		{"/var/lib/dayboard.db", "/var/lib/dayboard.db"},
		{"relative/~/path", "relative/~/path"},
		{"~other/file", "~other/file"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
