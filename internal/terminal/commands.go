package terminal

import (
	"sort"
	"strings"
)

// Command names recognised by the terminal. All are lowercase.
const (
	CommandHelp     = "help"
	CommandAbout    = "about"
	CommandClear    = "clear"
	CommandContact  = "contact"
	CommandProjects = "projects"
	CommandSkills   = "skills"
	CommandWins     = "wins"
)

// EchoPrefix precedes every echoed command.
const EchoPrefix = "> "

// NotFound is appended for any command missing from the table.
const NotFound = `Command not found. Type "help".`

// CommandTable maps a lowercase command name to its canned response. Commands with
// special behaviour (clear, contact) map to an empty response.
type CommandTable struct {
	entries map[string]string
}

var defaultTable = CommandTable{entries: map[string]string{
	CommandHelp:     "Available commands:\n• about\n• clear\n• contact\n• projects\n• skills\n• wins",
	CommandAbout:    "Alex Hernandez is a legendary systems engineer building solutions with Azure, AWS, Python, SQL, Databricks, and more.\nCurrent role: Senior Systems Engineer @ AlixPartners",
	CommandProjects: "• Bubble Portfolio\n• Retro Terminal\n• Data Dashboards",
	CommandSkills:   "Azure | AWS | Python | SQL | Databricks",
	CommandWins:     "Certifications:\n• Microsoft Azure AI Engineer Associate (AI-102)\n• Microsoft Azure Fundamentals (AZ-900)",
	CommandClear:    "",
	CommandContact:  "",
}}

// DefaultTable returns the built-in command table.
func DefaultTable() CommandTable {
	return defaultTable
}

// Lookup returns the response for name. The name must already be normalized.
func (t CommandTable) Lookup(name string) (string, bool) {
	resp, ok := t.entries[name]
	return resp, ok
}

// Names lists every command, sorted.
func (t CommandTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize trims surrounding whitespace and lowercases raw input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
