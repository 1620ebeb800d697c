package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
	// Distance is the edit distance between the query and the name; zero for
	// substring matches.
	Distance int
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search returns commands available in scope. Substring hits rank first;
// names within a small edit distance of the query are kept as near misses.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		dist, ok := matchCommand(q, c)
		if !ok {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
			Distance:  dist,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if a.Distance != b.Distance {
			return cmp.Compare(a.Distance, b.Distance)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

func matchCommand(q string, c Command) (int, bool) {
	if q == "" {
		return 0, true
	}
	h := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
	if strings.Contains(h, q) {
		return 0, true
	}
	best := -1
	for _, word := range append(strings.Fields(strings.ToLower(c.Name)), strings.ToLower(c.Name), strings.ToLower(c.ID)) {
		d := levenshtein.ComputeDistance(q, word)
		if best < 0 || d < best {
			best = d
		}
	}
	limit := max(1, len([]rune(q))/3)
	if best < 0 || best > limit {
		return 0, false
	}
	return best, true
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
