package parser

import "fmt"

// Reasons attached to skipped lines.
const (
	ReasonUnrecognized      = "unrecognized line"
	ReasonUnbalancedBrace   = "closing brace without open block"
	ReasonInvalidMember     = "unrecognized member"
	ReasonUnsupportedMember = "member not allowed here"
	ReasonInvalidEnumValue  = "invalid enum value"
	ReasonNestedEntity      = "nested declaration not supported"
)

// Skip is one line that did not contribute to the diagram.
type Skip struct {
	Line   int    // 1-based line number in the original text
	Text   string // trimmed line text
	Reason string
}

func (s Skip) String() string { return fmt.Sprintf("line %d: %s: %q", s.Line, s.Reason, s.Text) }

// Report collects the lines the parser dropped. It is informational only;
// parsing never fails.
type Report struct {
	Skipped []Skip
}

func (r *Report) add(line int, text, reason string) {
	r.Skipped = append(r.Skipped, Skip{Line: line, Text: text, Reason: reason})
}

// Lines returns the skipped line numbers in order.
func (r *Report) Lines() []int {
	out := make([]int, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		out = append(out, s.Line)
	}
	return out
}

// Len returns the number of skipped lines.
func (r *Report) Len() int { return len(r.Skipped) }
