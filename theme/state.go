package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

const stateFile = "codecolor-state.json"

// State is everything the editor persists: which palette is active, both
// palettes, and the three role mappings.
type State struct {
	Dir string `json:"-" toml:"-" yaml:"-"`

	DarkMode           bool               `json:"dark_mode" toml:"dark_mode" yaml:"dark_mode"`
	SyntaxMapping      SyntaxMapping      `json:"syntax_mapping" toml:"syntax_mapping" yaml:"syntax_mapping"`
	DiagnosticsMapping DiagnosticsMapping `json:"diagnostics_mapping" toml:"diagnostics_mapping" yaml:"diagnostics_mapping"`
	StatuslineMapping  StatuslineMapping  `json:"statusline_mapping" toml:"statusline_mapping" yaml:"statusline_mapping"`
	DarkColors         Theme              `json:"dark_colors" toml:"dark_colors" yaml:"dark_colors"`
	LightColors        Theme              `json:"light_colors" toml:"light_colors" yaml:"light_colors"`
}

// NewState returns the built-in defaults rooted at dir.
func NewState(dir string) *State {
	return &State{
		Dir:                dir,
		SyntaxMapping:      DefaultSyntaxMapping(),
		DiagnosticsMapping: DefaultDiagnosticsMapping(),
		StatuslineMapping:  DefaultStatuslineMapping(),
		DarkColors:         DefaultDark(),
		LightColors:        DefaultLight(),
	}
}

// Path is the state file location.
func (s *State) Path() string {
	return filepath.Join(s.Dir, stateFile)
}

// Load reads codecolor-state.json from dir. Returns defaults if the file is
// missing.
func Load(dir string) (*State, error) {
	data, err := os.ReadFile(filepath.Join(dir, stateFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewState(dir), nil
		}
		return nil, fmt.Errorf("read theme state: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse theme state: %w", err)
	}
	if err := st.Merge(); err != nil {
		return nil, fmt.Errorf("parse theme state: %w", err)
	}
	st.Dir = dir
	return &st, nil
}

// Merge fills anything missing from the defaults: role keys added since the
// state was written, and empty palette slots. Entries naming an unknown
// slot fall back to the default slot. Colors are canonicalized.
func (s *State) Merge() error {
	s.SyntaxMapping = mergeMapping(DefaultSyntaxMapping(), s.SyntaxMapping)
	s.DiagnosticsMapping = mergeMapping(DefaultDiagnosticsMapping(), s.DiagnosticsMapping)
	s.StatuslineMapping = mergeMapping(DefaultStatuslineMapping(), s.StatuslineMapping)

	dark, err := s.DarkColors.Normalize(DefaultDark())
	if err != nil {
		return fmt.Errorf("dark colors: %w", err)
	}
	light, err := s.LightColors.Normalize(DefaultLight())
	if err != nil {
		return fmt.Errorf("light colors: %w", err)
	}
	s.DarkColors, s.LightColors = dark, light
	return nil
}

func mergeMapping[K ~string, M ~map[K]Slot](defaults, persisted M) M {
	out := maps.Clone(defaults)
	for k, v := range persisted {
		if _, known := defaults[k]; !known {
			continue
		}
		if _, err := ParseSlot(string(v)); err != nil {
			continue
		}
		out[k] = v
	}
	return out
}

// Save writes the state to Dir, creating the directory if needed.
func (s *State) Save() error {
	if s.Dir == "" {
		return errors.New("write theme state: no state directory")
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal theme state: %w", err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("write theme state: %w", err)
	}
	if err := os.WriteFile(s.Path(), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write theme state: %w", err)
	}
	return nil
}

// Active returns the palette selected by DarkMode.
func (s *State) Active() Theme {
	if s.DarkMode {
		return s.DarkColors
	}
	return s.LightColors
}

func (s *State) activePtr() *Theme {
	if s.DarkMode {
		return &s.DarkColors
	}
	return &s.LightColors
}

// SetColor updates one slot of the active palette.
func (s *State) SetColor(slot Slot, color string) error {
	t, err := s.activePtr().With(slot, color)
	if err != nil {
		return err
	}
	*s.activePtr() = t
	return nil
}

// SetRole points role at slot.
func (s *State) SetRole(role Role, slot Slot) error {
	if _, err := ParseSlot(string(slot)); err != nil {
		return err
	}
	switch role.Group {
	case GroupSyntax:
		return s.SetSyntax(SyntaxToken(role.Name), slot)
	case GroupDiagnostics:
		return s.SetDiagnostic(Diagnostic(role.Name), slot)
	case GroupStatusline:
		return s.SetStatus(StatusMode(role.Name), slot)
	}
	return fmt.Errorf("unknown role %q", role)
}

func (s *State) SetSyntax(tok SyntaxToken, slot Slot) error {
	if _, ok := DefaultSyntaxMapping()[tok]; !ok {
		return fmt.Errorf("unknown syntax token %q", tok)
	}
	if s.SyntaxMapping == nil {
		s.SyntaxMapping = DefaultSyntaxMapping()
	}
	s.SyntaxMapping[tok] = slot
	return nil
}

func (s *State) SetDiagnostic(d Diagnostic, slot Slot) error {
	if _, ok := DefaultDiagnosticsMapping()[d]; !ok {
		return fmt.Errorf("unknown diagnostic %q", d)
	}
	if s.DiagnosticsMapping == nil {
		s.DiagnosticsMapping = DefaultDiagnosticsMapping()
	}
	s.DiagnosticsMapping[d] = slot
	return nil
}

func (s *State) SetStatus(m StatusMode, slot Slot) error {
	if _, ok := DefaultStatuslineMapping()[m]; !ok {
		return fmt.Errorf("unknown status mode %q", m)
	}
	if s.StatuslineMapping == nil {
		s.StatuslineMapping = DefaultStatuslineMapping()
	}
	s.StatuslineMapping[m] = slot
	return nil
}

// SlotFor returns the slot role is mapped to.
func (s *State) SlotFor(role Role) (Slot, error) {
	var (
		slot Slot
		ok   bool
	)
	switch role.Group {
	case GroupSyntax:
		slot, ok = s.SyntaxMapping[SyntaxToken(role.Name)]
	case GroupDiagnostics:
		slot, ok = s.DiagnosticsMapping[Diagnostic(role.Name)]
	case GroupStatusline:
		slot, ok = s.StatuslineMapping[StatusMode(role.Name)]
	}
	if !ok {
		return "", fmt.Errorf("unknown role %q", role)
	}
	return slot, nil
}

// Resolve returns the active palette's color for role.
func (s *State) Resolve(role Role) (string, error) {
	slot, err := s.SlotFor(role)
	if err != nil {
		return "", err
	}
	return s.Active().Get(slot), nil
}

// ResetAll restores every default, dark mode off, and removes the state
// file.
func (s *State) ResetAll() error {
	dir := s.Dir
	*s = *NewState(dir)
	if dir == "" {
		return nil
	}
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove theme state: %w", err)
	}
	return nil
}

// ResetCurrentTheme restores the default palette for one mode.
func (s *State) ResetCurrentTheme(dark bool) {
	if dark {
		s.DarkColors = DefaultDark()
		return
	}
	s.LightColors = DefaultLight()
}

// ResetMappings restores all three role mappings.
func (s *State) ResetMappings() {
	s.SyntaxMapping = DefaultSyntaxMapping()
	s.DiagnosticsMapping = DefaultDiagnosticsMapping()
	s.StatuslineMapping = DefaultStatuslineMapping()
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	out := *s
	out.SyntaxMapping = maps.Clone(s.SyntaxMapping)
	out.DiagnosticsMapping = maps.Clone(s.DiagnosticsMapping)
	out.StatuslineMapping = maps.Clone(s.StatuslineMapping)
	return &out
}
