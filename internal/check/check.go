package check

import (
	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/theme"
)

// Status represents the outcome of one contrast check.
type Status int

const (
	StatusPass      Status = iota // meets the target ratio
	StatusSkipped                 // role is mapped to its own background slot
	StatusLargeOnly               // below target, readable as large text (>= 3:1)
	StatusFail                    // below 3:1
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusSkipped:
		return "skipped"
	case StatusLargeOnly:
		return "large-only"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Entry is one foreground/background pair's audit result.
type Entry struct {
	Role       string                   `json:"role" yaml:"role"`
	Slot       theme.Slot               `json:"slot" yaml:"slot"`
	Foreground string                   `json:"foreground" yaml:"foreground"`
	Background string                   `json:"background" yaml:"background"`
	Result     colorutil.ContrastResult `json:"result" yaml:"result"`
	Status     Status                   `json:"-" yaml:"-"`
	StatusText string                   `json:"status" yaml:"status"`
	Suggestion string                   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"` // accessible replacement when not passing
}

// GroupResult holds the entries checked against one background slot.
type GroupResult struct {
	Name       string     `json:"name" yaml:"name"`
	Background theme.Slot `json:"background" yaml:"background"`
	Entries    []Entry    `json:"entries" yaml:"entries"`
}

// AuditResult is the complete output of a theme audit.
type AuditResult struct {
	Dark   bool          `json:"dark" yaml:"dark"`
	Target float64       `json:"target" yaml:"target"`
	Groups []GroupResult `json:"groups" yaml:"groups"`
}

// Audit checks every mapped role of the active palette against bg0, and the
// fg slots against bg0 and bg1.
func Audit(st *theme.State, target float64) *AuditResult {
	if target <= 0 {
		target = colorutil.DefaultTargetRatio
	}
	active := st.Active()
	res := &AuditResult{Dark: st.DarkMode, Target: target}

	groups := map[string]*GroupResult{}
	var order []string
	for _, role := range theme.Roles() {
		g, ok := groups[role.Group]
		if !ok {
			g = &GroupResult{Name: role.Group, Background: theme.Bg0}
			groups[role.Group] = g
			order = append(order, role.Group)
		}
		slot, err := st.SlotFor(role)
		if err != nil {
			continue
		}
		g.Entries = append(g.Entries, check(role.String(), slot, active, theme.Bg0, target))
	}
	for _, name := range order {
		res.Groups = append(res.Groups, *groups[name])
	}

	for _, bg := range []theme.Slot{theme.Bg0, theme.Bg1} {
		g := GroupResult{Name: "text", Background: bg}
		for _, fg := range []theme.Slot{theme.Fg0, theme.Fg1, theme.Fg2} {
			g.Entries = append(g.Entries, check("text."+string(fg), fg, active, bg, target))
		}
		res.Groups = append(res.Groups, g)
	}
	return res
}

func check(role string, slot theme.Slot, t theme.Theme, bgSlot theme.Slot, target float64) Entry {
	fg, bg := t.Get(slot), t.Get(bgSlot)
	e := Entry{
		Role:       role,
		Slot:       slot,
		Foreground: fg,
		Background: bg,
		Result:     colorutil.CheckContrast(fg, bg),
	}

	ratio := colorutil.ContrastRatio(fg, bg)
	switch {
	case slot == bgSlot:
		e.Status = StatusSkipped
	case ratio >= target:
		e.Status = StatusPass
	case e.Result.AALarge:
		e.Status = StatusLargeOnly
	default:
		e.Status = StatusFail
	}
	if e.Status == StatusLargeOnly || e.Status == StatusFail {
		e.Suggestion = colorutil.SuggestAccessibleColor(fg, bg, target)
	}
	e.StatusText = e.Status.String()
	return e
}

// Failing returns every entry that is neither passing nor skipped.
func (r *AuditResult) Failing() []Entry {
	var out []Entry
	for _, g := range r.Groups {
		for _, e := range g.Entries {
			if e.Status == StatusLargeOnly || e.Status == StatusFail {
				out = append(out, e)
			}
		}
	}
	return out
}

// Summary returns (ok, total) counts across all checks.
func (r *AuditResult) Summary() (int, int) {
	ok, total := 0, 0
	for _, g := range r.Groups {
		for _, e := range g.Entries {
			if e.Status == StatusSkipped {
				continue // don't count intentional skips
			}
			total++
			if e.Status == StatusPass {
				ok++
			}
		}
	}
	return ok, total
}
