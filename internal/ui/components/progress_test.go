package components

import (
	"strings"
	"testing"
)

func TestProgressBar_ClampsDone(t *testing.T) {
	cases := []struct {
		name string
		done int
		want int
	}{
		{"negative", -3, 0},
		{"overshoot", 20, 14},
		{"in range", 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProgressBar("window", tc.done, 14, 40)
			if p.Done != tc.want {
				t.Errorf("Done = %d, want %d", p.Done, tc.want)
			}
		})
	}
}

func TestProgressBar_ViewShowsCount(t *testing.T) {
	p := NewProgressBar("Last two weeks", 10, 14, 48)
	view := p.View()
	if !strings.Contains(view, "10/14") {
		t.Errorf("view missing done/total count: %q", view)
	}
	if !strings.Contains(view, "Last two weeks") {
		t.Errorf("view missing label: %q", view)
	}
}

func TestProgressBar_ZeroTotal(t *testing.T) {
	p := NewProgressBar("", 0, 0, 20)
	if view := p.View(); view == "" {
		t.Error("expected a rendered empty bar")
	}
}
