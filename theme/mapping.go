package theme

import (
	"fmt"
	"strings"
)

// SyntaxToken is a code token class that can be colored.
type SyntaxToken string

const (
	TokenComment   SyntaxToken = "comment"
	TokenKeyword   SyntaxToken = "keyword"
	TokenString    SyntaxToken = "string"
	TokenNumber    SyntaxToken = "number"
	TokenVariable  SyntaxToken = "variable"
	TokenFn        SyntaxToken = "fn"
	TokenType      SyntaxToken = "type"
	TokenClass     SyntaxToken = "class"
	TokenNamespace SyntaxToken = "namespace"
	TokenParameter SyntaxToken = "parameter"
	TokenOperator  SyntaxToken = "operator"
	TokenBuiltin   SyntaxToken = "builtin"
	TokenProperty  SyntaxToken = "property"
	TokenSpecial   SyntaxToken = "special"
	TokenMacro     SyntaxToken = "macro"
)

// Diagnostic is an editor diagnostic severity.
type Diagnostic string

const (
	DiagError   Diagnostic = "error"
	DiagWarning Diagnostic = "warning"
	DiagInfo    Diagnostic = "info"
	DiagHint    Diagnostic = "hint"
	DiagOK      Diagnostic = "ok"
)

// StatusMode is an editor mode shown in the status line.
type StatusMode string

const (
	ModeNormal   StatusMode = "normal"
	ModeInsert   StatusMode = "insert"
	ModeVisual   StatusMode = "visual"
	ModeReplace  StatusMode = "replace"
	ModeCommand  StatusMode = "command"
	ModeTerminal StatusMode = "terminal"
)

// SyntaxMapping, DiagnosticsMapping and StatuslineMapping assign a palette
// slot to each role.
type (
	SyntaxMapping      map[SyntaxToken]Slot
	DiagnosticsMapping map[Diagnostic]Slot
	StatuslineMapping  map[StatusMode]Slot
)

var syntaxTokens = []SyntaxToken{
	TokenComment, TokenKeyword, TokenString, TokenNumber, TokenVariable,
	TokenFn, TokenType, TokenClass, TokenNamespace, TokenParameter,
	TokenOperator, TokenBuiltin, TokenProperty, TokenSpecial, TokenMacro,
}

var diagnostics = []Diagnostic{DiagError, DiagWarning, DiagInfo, DiagHint, DiagOK}

var statusModes = []StatusMode{
	ModeNormal, ModeInsert, ModeVisual, ModeReplace, ModeCommand, ModeTerminal,
}

func SyntaxTokens() []SyntaxToken { return append([]SyntaxToken(nil), syntaxTokens...) }
func Diagnostics() []Diagnostic   { return append([]Diagnostic(nil), diagnostics...) }
func StatusModes() []StatusMode   { return append([]StatusMode(nil), statusModes...) }

func DefaultSyntaxMapping() SyntaxMapping {
	return SyntaxMapping{
		TokenComment:   Color8,
		TokenKeyword:   Color5,
		TokenString:    Color2,
		TokenNumber:    Color11,
		TokenVariable:  Color1,
		TokenFn:        Color4,
		TokenType:      Color9,
		TokenClass:     Color3,
		TokenNamespace: Color3,
		TokenParameter: Color11,
		TokenOperator:  Color15,
		TokenBuiltin:   Color6,
		TokenProperty:  Color1,
		TokenSpecial:   Color12,
		TokenMacro:     Color9,
	}
}

func DefaultDiagnosticsMapping() DiagnosticsMapping {
	return DiagnosticsMapping{
		DiagError:   Color9,
		DiagWarning: Color17,
		DiagInfo:    Color4,
		DiagHint:    Color6,
		DiagOK:      Color2,
	}
}

func DefaultStatuslineMapping() StatuslineMapping {
	return StatuslineMapping{
		ModeNormal:   Color5,
		ModeInsert:   Color3,
		ModeVisual:   Color4,
		ModeReplace:  Color1,
		ModeCommand:  Color6,
		ModeTerminal: Color2,
	}
}

// Role groups.
const (
	GroupSyntax      = "syntax"
	GroupDiagnostics = "diagnostics"
	GroupStatusline  = "statusline"
)

// Role identifies one mapped role, e.g. syntax.keyword.
type Role struct {
	Group string
	Name  string
}

func (r Role) String() string { return r.Group + "." + r.Name }

// Roles lists every role in display order: syntax, diagnostics, statusline.
func Roles() []Role {
	out := make([]Role, 0, len(syntaxTokens)+len(diagnostics)+len(statusModes))
	for _, t := range syntaxTokens {
		out = append(out, Role{GroupSyntax, string(t)})
	}
	for _, d := range diagnostics {
		out = append(out, Role{GroupDiagnostics, string(d)})
	}
	for _, m := range statusModes {
		out = append(out, Role{GroupStatusline, string(m)})
	}
	return out
}

// ParseRole accepts "group.name" or a bare role name. Role names are unique
// across groups so the bare form is unambiguous.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	group, name, qualified := strings.Cut(s, ".")
	if !qualified {
		name, group = group, ""
	}
	for _, r := range Roles() {
		if r.Name == name && (group == "" || r.Group == group) {
			return r, nil
		}
	}
	return Role{}, fmt.Errorf("unknown role %q", s)
}
