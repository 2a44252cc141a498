package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"render", "edit", "serve", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCompletionShells(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for shell, gen := range completionShells {
		var buf bytes.Buffer
		if err := gen(root, &buf); err != nil {
			t.Errorf("%s: %v", shell, err)
		}
		if !strings.Contains(buf.String(), "daireno") {
			t.Errorf("%s completion does not mention daireno", shell)
		}
	}
}

func TestSetupFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	tests := []struct {
		name  string
		flags setupFlags
		want  [3]int
	}{
		{"unset takes config", setupFlags{}, [3]int{1, 0, 1}},
		{"explicit", setupFlags{floors: "5", basements: "2", apartments: "4"}, [3]int{5, 2, 4}},
		{"invalid falls back per field", setupFlags{floors: "x", basements: "-1", apartments: "3"}, [3]int{1, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.flags.setup(c.cfg)
			if got := [3]int{s.NormalFloors, s.Basements, s.Apartments}; got != tt.want {
				t.Errorf("setup() = %v, want %v", got, tt.want)
			}
		})
	}

	if e := c.newEditor(&setupFlags{width: 600}); e.Width() != 600 {
		t.Errorf("Width() = %v, want 600", e.Width())
	}
	if e := c.newEditor(&setupFlags{}); e.Width() != c.cfg.Diagram.Width {
		t.Errorf("Width() = %v, want config width", e.Width())
	}
}
