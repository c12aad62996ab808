package filter

import (
	"reflect"
	"testing"
)

func TestSplitPatterns(t *testing.T) {
	raw := "  .git \n\nTemplates\n\t\n.trash"
	want := []string{".git", "templates", ".trash"}

	if got := SplitPatterns(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("SplitPatterns = %v, want %v", got, want)
	}

	if got := SplitPatterns(""); got != nil {
		t.Errorf("SplitPatterns of empty input = %v, want nil", got)
	}
}

func TestIsExcluded(t *testing.T) {
	patterns := []string{".git", "templates"}

	cases := []struct {
		path string
		want bool
	}{
		{"/Notes/todo.md", false},
		{"/.git/config", true},
		{"/Projects/.gitignore", true},
		{"/TEMPLATES/daily.md", true},
		{"/Notes/2024", false},
		{"/Notes/my templates folder/x.md", true},
	}

	for _, tc := range cases {
		if got := IsExcluded(tc.path, patterns); got != tc.want {
			t.Errorf("IsExcluded(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}

	if IsExcluded("/anything", nil) {
		t.Error("no patterns should exclude nothing")
	}
}
