// Package diag implements an ordered diagnostic sink: messages accumulate
// during analysis and are rendered either GCC-style with source-line and
// caret context, or as JSON for tool consumption.
package diag

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/semc/internal/token"
	"github.com/tidwall/pretty"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported message.
type Diagnostic struct {
	Severity Severity
	Phase string // "lexer", "parser", or a semantic pass name
	Pos token.Position
	Message string
	Hint string

	// passIndex orders diagnostics by pipeline position (pass-index major,
	// line number minor), independent of Phase's display string.
	passIndex int
}

// phaseOrder assigns each phase name its position in the fixed analysis
// pipeline for the global sort in Diagnostics.
var phaseOrder = map[string]int{
	"lexer": 0, "parser": 1,
	"declaration": 2,
	"typealias": 3,
	"reference": 4,
	"globaldeps": 5,
	"globalinfer": 6,
	"localinfer": 7,
	"constantcheck": 8,
}

// Sink accumulates diagnostics in emission order.
type Sink struct {
	source string
	items []Diagnostic
}

// NewSink creates a Sink that renders source-line context from source.
func NewSink(source string) *Sink { return &Sink{source: source} }

// Report appends a Diagnostic tagged with phase's pipeline order.
func (s *Sink) Report(severity Severity, phase string, pos token.Position, message string) {
	s.items = append(s.items, Diagnostic{
		Severity: severity, Phase: phase, Pos: pos, Message: message,
		passIndex: phaseOrder[phase],
	})
}

// Reportf is Report with fmt.Sprintf-style formatting.
func (s *Sink) Reportf(severity Severity, phase string, pos token.Position, format string, args ...any) {
	s.Report(severity, phase, pos, fmt.Sprintf(format, args...))
}

// Diagnostics returns all reported diagnostics, sorted pass-index major,
// line number minor.
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].passIndex != out[j].passIndex {
			return out[i].passIndex < out[j].passIndex
		}
		return out[i].Pos.Line < out[j].Pos.Line
	})
	return out
}

// HasErrors reports whether any Error-severity diagnostic was reported.
func (s *Sink) HasErrors() bool {
	for _, d := range s.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Format renders all diagnostics GCC-style: a `file:line:col: severity:
// message` header, the offending source line, and a caret under the column.
func (s *Sink) Format(useColor bool) string {
	var sb strings.Builder
	for _, d := range s.Diagnostics() {
		sb.WriteString(formatOne(d, s.source, useColor))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatOne(d Diagnostic, source string, useColor bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s: %s\n", d.Pos.String(), d.Severity, d.Message))

	lines := strings.Split(source, "\n")
	if d.Pos.Line >= 1 && d.Pos.Line <= len(lines) {
		line := lines[d.Pos.Line-1]
		prefix := fmt.Sprintf("%5d | ", d.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := d.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
		if useColor {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}
	if d.Hint != "" {
		sb.WriteString(" hint: " + d.Hint + "\n")
	}
	return sb.String()
}

// jsonDiagnostic is the wire shape for FormatJSON.
type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Phase string `json:"phase"`
	File string `json:"file,omitempty"`
	Line int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
	Message string `json:"message"`
	Hint string `json:"hint,omitempty"`
}

// FormatJSON marshals the diagnostic slice for tool consumption,
// pretty-printed with tidwall/pretty for stable, diffable golden fixtures.
func (s *Sink) FormatJSON() ([]byte, error) {
	diags := s.Diagnostics()
	out := make([]jsonDiagnostic, len(diags))
	for i, d := range diags {
		out[i] = jsonDiagnostic{
			Severity: d.Severity.String(), Phase: d.Phase, File: d.Pos.Filename,
			Line: d.Pos.Line, Column: d.Pos.Column, Offset: d.Pos.Offset,
			Message: d.Message, Hint: d.Hint,
		}
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(raw), nil
}
