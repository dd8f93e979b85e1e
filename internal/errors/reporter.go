package errors

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
)

// ErrorLevel represents the severity of a reported diagnostic.
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
)

// EngineError is a structured ParseError/BudgetExceeded-style diagnostic
// with enough source context to render a caret-style message.
type EngineError struct {
	Level    ErrorLevel
	Code     string
	Message  string
	Position lexer.Position
	Length   int
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s[%s]: %s (%s:%d:%d)", e.Level, e.Code, e.Message, e.Position.Filename, e.Position.Line, e.Position.Column)
}

// NewParseError builds an EngineError of category ParseError.
func NewParseError(code, message string, pos lexer.Position) *EngineError {
	return &EngineError{Level: Error, Code: code, Message: message, Position: pos, Length: 1}
}

// BudgetError reports that the runner's node_limit was hit mid-apply.
type BudgetError struct {
	Limit int
	Size  int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("%s[%s]: node_limit %d exceeded (size %d); iteration's partial effect retained", Warning, ErrorBudgetExceeded, e.Limit, e.Size)
}

// NewBudgetExceeded builds a BudgetError for the given limit/observed size.
func NewBudgetExceeded(limit, size int) *BudgetError {
	return &BudgetError{Limit: limit, Size: size}
}

// Invariant wraps an InvariantViolation
// with a stack trace, since callers are expected to surface it to a
// process-level fatal handler rather than recover from it.
func Invariant(format string, args ...any) error {
	return pkgerrors.Wrap(fmt.Errorf(format, args...), ErrorInvariantViolation)
}

// Reporter renders EngineErrors against the original source text, in the
// teacher's caret-underline style.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for a file or REPL line.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders one EngineError as a multi-line, colorized message.
func (r *Reporter) Format(err *EngineError) string {
	var b strings.Builder

	levelColor := r.levelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	b.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message))

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	b.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, err.Position.Line, err.Position.Column))
	b.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if err.Position.Line >= 1 && err.Position.Line <= len(r.lines) {
		line := r.lines[err.Position.Line-1]
		b.WriteString(fmt.Sprintf("%s %s %s\n", bold(fmt.Sprintf("%*d", width, err.Position.Line)), dim("│"), line))
		b.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), r.marker(err.Position.Column, err.Length)))
	}

	return b.String()
}

func (r *Reporter) levelColor(level ErrorLevel) func(...any) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(column, length int) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	return spaces + markerColor(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	w := len(fmt.Sprintf("%d", line))
	if w < 3 {
		w = 3
	}
	return w
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
