package parser

import (
	"regexp"
	"strings"

	"github.com/calumari/pumlgen/internal/model"
)

// arrowRule is one arrow spelling. leftIsSource tells which side of the
// arrow becomes the canonical source.
type arrowRule struct {
	token        string
	kind         model.RelationshipType
	leftIsSource bool
	re           *regexp.Regexp
}

// arrows are tried in order: tokens that contain other tokens come first.
// Diamond tokens need whitespace between the diamond and the class name so
// a name ending in "o" is not read as an aggregation.
var arrows = []arrowRule{
	rule(`<|--`, model.Inheritance, true, `\s*`, `\s*`),
	rule(`--|>`, model.Inheritance, false, `\s*`, `\s*`),
	rule(`<|..`, model.Implementation, true, `\s*`, `\s*`),
	rule(`..|>`, model.Implementation, false, `\s*`, `\s*`),
	rule(`o-->`, model.Aggregation, true, `\s+`, `\s*`),
	rule(`<--o`, model.Aggregation, false, `\s*`, `\s+`),
	rule(`*-->`, model.Composition, true, `\s*`, `\s*`),
	rule(`<--*`, model.Composition, false, `\s*`, `\s*`),
	rule(`*--`, model.Composition, true, `\s*`, `\s*`),
	rule(`--*`, model.Composition, false, `\s*`, `\s*`),
	rule(`o--`, model.Aggregation, true, `\s+`, `\s*`),
	rule(`--o`, model.Aggregation, false, `\s*`, `\s+`),
	rule(`-->`, model.Association, true, `\s*`, `\s*`),
	rule(`<--`, model.Association, false, `\s*`, `\s*`),
	rule(`..>`, model.Dependency, true, `\s*`, `\s*`),
	rule(`<..`, model.Dependency, false, `\s*`, `\s*`),
	rule(`--`, model.Association, true, `\s*`, `\s*`),
}

var quotedRe = regexp.MustCompile(`"([^"]*)"`)

func rule(token string, kind model.RelationshipType, leftIsSource bool, before, after string) arrowRule {
	re := regexp.MustCompile(`^\s*(` + identPattern + `)` + before + `(` + regexp.QuoteMeta(token) + `)` + after + `(` + identPattern + `)\s*$`)
	return arrowRule{token: token, kind: kind, leftIsSource: leftIsSource, re: re}
}

// parseRelationship reads one relationship line. Quoted strings are blanked
// out before matching so their contents cannot look like arrows; a single
// quoted string is the label, and quoted strings on both sides of the arrow
// are cardinalities. A ": label" suffix takes precedence over quotes.
func parseRelationship(line string) (model.Relationship, bool) {
	quotes := quotedRe.FindAllStringSubmatchIndex(line, -1)
	blank := []byte(line)
	for _, q := range quotes {
		for i := q[0]; i < q[1]; i++ {
			blank[i] = ' '
		}
	}
	body := string(blank)
	label := ""
	if i := strings.IndexByte(body, ':'); i >= 0 {
		label = strings.Trim(strings.TrimSpace(line[i+1:]), `"`)
		body = body[:i]
	}

	for _, a := range arrows {
		m := a.re.FindStringSubmatchIndex(body)
		if m == nil {
			continue
		}
		left, right := body[m[2]:m[3]], body[m[6]:m[7]]
		arrowAt := m[4]

		var leftCard, rightCard string
		var inBody []string
		var sides []bool
		for _, q := range quotes {
			if q[0] >= len(body) {
				continue
			}
			inBody = append(inBody, line[q[2]:q[3]])
			sides = append(sides, q[0] < arrowAt)
		}
		switch {
		case label != "":
			for i, text := range inBody {
				if sides[i] {
					leftCard = text
				} else {
					rightCard = text
				}
			}
		case len(inBody) >= 2 && sides[0] && !sides[len(sides)-1]:
			leftCard, rightCard = inBody[0], inBody[len(inBody)-1]
		case len(inBody) > 0:
			label = inBody[0]
		}

		rel := model.Relationship{Type: a.kind, Label: label}
		if a.leftIsSource {
			rel.Source, rel.Target = left, right
			rel.SourceCardinality, rel.TargetCardinality = leftCard, rightCard
		} else {
			rel.Source, rel.Target = right, left
			rel.SourceCardinality, rel.TargetCardinality = rightCard, leftCard
		}
		return rel, true
	}
	return model.Relationship{}, false
}
