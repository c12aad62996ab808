package pathutil

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"Notes", "/Notes"},
		{"/Notes/", "/Notes"},
		{"Notes\\2024", "/Notes/2024"},
		{"//Notes//sub/../2024", "/Notes/2024"},
		{".", "/"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParentAndBase(t *testing.T) {
	if got := Parent("/Notes/2024"); got != "/Notes" {
		t.Errorf("Parent = %q, want /Notes", got)
	}
	if got := Parent("/Notes"); got != "/" {
		t.Errorf("Parent of top-level folder = %q, want /", got)
	}
	if got := Parent("/"); got != "/" {
		t.Errorf("Parent of root = %q, want /", got)
	}
	if got := Base("/Notes/todo.md"); got != "todo.md" {
		t.Errorf("Base = %q, want todo.md", got)
	}
	if got := Base("/"); got != "/" {
		t.Errorf("Base of root = %q, want /", got)
	}
}

func TestIsAncestor(t *testing.T) {
	cases := []struct {
		ancestor string
		p        string
		want     bool
	}{
		{"/a", "/a", true},
		{"/a", "/a/b", true},
		{"/a", "/a/b/c", true},
		{"/a", "/ab", false},
		{"/a/b", "/a", false},
		{"/", "/anything", true},
	}

	for _, tc := range cases {
		if got := IsAncestor(tc.ancestor, tc.p); got != tc.want {
			t.Errorf("IsAncestor(%q, %q) = %v, want %v", tc.ancestor, tc.p, got, tc.want)
		}
	}
}

func TestExt(t *testing.T) {
	if got := Ext("/Notes/todo.MD"); got != "md" {
		t.Errorf("Ext = %q, want md", got)
	}
	if got := Ext("/Notes/.hidden"); got != "" {
		t.Errorf("Ext of dotfile = %q, want empty", got)
	}
	if got := Ext("/Notes/noext"); got != "" {
		t.Errorf("Ext without extension = %q, want empty", got)
	}
}

func TestJoin(t *testing.T) {
	if got := Join("/", "Notes"); got != "/Notes" {
		t.Errorf("Join root = %q", got)
	}
	if got := Join("/Notes", "todo.md"); got != "/Notes/todo.md" {
		t.Errorf("Join = %q", got)
	}
}
