package analysis

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/studize/internal/prompts"
	"github.com/JaimeStill/studize/internal/roster"
)

// Selection is the set of students an analysis covers. It is either a
// Single or a Multi; the variant decides the template and not-found text.
type Selection interface {
	// Mode is the template mode the selection is summarized with.
	Mode() prompts.Mode
	// Requested returns the names as given, without blanks.
	Requested() []string

	validate() error
	selectRows(t *roster.Table) (rs roster.RowSet, missing []string)
	notFound() string
}

// Single selects the rows of one student.
type Single struct {
	Name string `json:"name"`
}

func (s Single) Mode() prompts.Mode { return prompts.ModeSingle }

func (s Single) Requested() []string {
	if strings.TrimSpace(s.Name) == "" {
		return []string{}
	}
	return []string{s.Name}
}

func (s Single) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNoSelection
	}
	return nil
}

func (s Single) selectRows(t *roster.Table) (roster.RowSet, []string) {
	rs := roster.Select(t, s.Name)
	if rs.Empty() {
		return rs, []string{s.Name}
	}
	return rs, []string{}
}

func (s Single) notFound() string {
	return fmt.Sprintf("No data found for student: %s", s.Name)
}

// Multi selects the rows of several students. A Multi holding one name is
// still summarized with the multi template.
type Multi struct {
	Names []string `json:"names"`
}

func (m Multi) Mode() prompts.Mode { return prompts.ModeMulti }

func (m Multi) Requested() []string {
	out := make([]string, 0, len(m.Names))
	for _, n := range m.Names {
		if strings.TrimSpace(n) != "" {
			out = append(out, n)
		}
	}
	return out
}

func (m Multi) validate() error {
	if len(m.Requested()) == 0 {
		return ErrNoSelection
	}
	return nil
}

func (m Multi) selectRows(t *roster.Table) (roster.RowSet, []string) {
	return roster.SelectMany(t, m.Requested())
}

func (m Multi) notFound() string {
	return "No data found for the given students."
}
