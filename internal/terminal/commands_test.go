package terminal

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"   ":        "",
		" Help ":     "help",
		"\tCONTACT\n": "contact",
		"Help Me":    "help me",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTableKeysAreLowercaseAndListedInHelp(t *testing.T) {
	table := DefaultTable()
	names := table.Names()
	if len(names) != 7 {
		t.Fatalf("Names() = %v, want 7 commands", names)
	}
	help, _ := table.Lookup(CommandHelp)
	for _, name := range names {
		if name != strings.ToLower(name) {
			t.Fatalf("key %q is not lowercase", name)
		}
		if name == CommandHelp {
			continue
		}
		if !strings.Contains(help, "• "+name) {
			t.Fatalf("help does not list %q", name)
		}
	}
}

func TestSpecialCommandsHaveEmptyResponses(t *testing.T) {
	for _, name := range []string{CommandClear, CommandContact} {
		resp, ok := DefaultTable().Lookup(name)
		if !ok || resp != "" {
			t.Fatalf("Lookup(%q) = %q, %v; want empty, true", name, resp, ok)
		}
	}
}
