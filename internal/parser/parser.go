// Package parser recovers classes, interfaces, enums and relationships from
// PlantUML class-diagram text.
//
// Parsing is best effort: lines that cannot be understood are dropped rather
// than rejected. ParseWithReport exposes the dropped lines for tooling.
package parser

import (
	"regexp"
	"strings"

	"github.com/calumari/pumlgen/internal/model"
)

const identPattern = `[A-Za-z_$][\w.$]*`

var (
	packageRe   = regexp.MustCompile(`^(?:package|namespace)\s+(?:"([^"]+)"|([\w.:$-]+))(?:\s+as\s+\w+)?(?:\s*<<[^>]*>>)?\s*(\{\s*\}|\{)?$`)
	classRe     = regexp.MustCompile(`^(abstract\s+class|abstract|class)\s+(` + identPattern + `)\s*(.*)$`)
	interfaceRe = regexp.MustCompile(`^interface\s+(` + identPattern + `)\s*(.*)$`)
	enumRe      = regexp.MustCompile(`^enum\s+(` + identPattern + `)\s*(.*)$`)
	stereoRe    = regexp.MustCompile(`<<\s*([^>]*?)\s*>>`)
	extendsRe   = regexp.MustCompile(`\bextends\s+(.+?)(?:\s+implements\b|$)`)
	implementRe = regexp.MustCompile(`\bimplements\s+(.+)$`)
	endNoteRe   = regexp.MustCompile(`^end\s*note\b`)
	noteRe      = regexp.MustCompile(`^note\b`)
	externalRe  = regexp.MustCompile(`^(` + identPattern + `)\s*:\s*(.+)$`)
	headerTail  = regexp.MustCompile(`^(?:$|<|\{|extends\b|implements\b)`)
	pkgLineRe   = regexp.MustCompile(`^(?:package|namespace)\b`)
	directiveRe = regexp.MustCompile(`^(?:skinparam|hide|show|title|scale|caption|header|footer|legend|endlegend|set|together|!\w+)\b|^(?:left to right|top to bottom) direction$`)
)

// scanState is the cursor threaded through the line loop. Package and entity
// braces are counted separately so a closing brace is attributed to the
// innermost open block of the right kind.
type scanState struct {
	pkg      string
	pkgDepth int
	pkgOuter []string

	entity      model.Entity
	inEntity    bool
	entityDepth int
	pendingBody bool
	nestedDepth int // braces of a declaration nested in an entity body

	skipDepth int
	inNote    bool
}

type run struct {
	d *model.Diagram
	r *Report
}

// Parse converts diagram text into a Diagram. It never fails.
func Parse(src string) *model.Diagram {
	d, _ := ParseWithReport(src)
	return d
}

// ParseWithReport is Parse plus the list of lines that were dropped.
func ParseWithReport(src string) (*model.Diagram, *Report) {
	p := &run{d: model.NewDiagram(), r: &Report{}}
	var st scanState
	for i, raw := range sanitize(src) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for _, seg := range segments(line) {
			st = p.step(st, i+1, seg)
		}
	}
	return p.d, p.r
}

func (p *run) step(st scanState, n int, line string) scanState {
	if st.inNote {
		if endNoteRe.MatchString(line) {
			st.inNote = false
		}
		return st
	}

	if st.pendingBody {
		st.pendingBody = false
		if line == "{" {
			st.inEntity = true
			st.entityDepth = 1
			return st
		}
		st.entity = nil
	}

	if !st.inEntity {
		if noteRe.MatchString(line) {
			if !strings.Contains(line, ":") && !strings.HasPrefix(line, `note "`) {
				st.inNote = true
			}
			return st
		}
		if directiveRe.MatchString(line) {
			if strings.HasSuffix(line, "{") {
				st.skipDepth++
			}
			return st
		}
		if st.skipDepth > 0 && line != "}" {
			return st
		}
		if m := packageRe.FindStringSubmatch(line); m != nil {
			return p.openPackage(st, m)
		}
	}

	if st.nestedDepth > 0 {
		switch {
		case line == "}" || line == "};":
			st.nestedDepth--
		case strings.HasSuffix(line, "{"):
			st.nestedDepth++
		}
		return st
	}

	if line == "}" || line == "};" {
		return p.closeBrace(st, n, line)
	}

	if st.inEntity {
		if line == "{" {
			st.entityDepth++
			return st
		}
		if rest, ok := nestedHeader(line); ok {
			p.r.add(n, line, ReasonNestedEntity)
			if strings.Contains(rest, "{") && !strings.Contains(rest, "}") {
				st.nestedDepth = 1
			}
			return st
		}
		p.member(st.entity, n, line)
		return st
	}

	if m := classRe.FindStringSubmatch(line); m != nil && headerTail.MatchString(m[3]) {
		c := &model.Class{Name: m[2], IsAbstract: strings.HasPrefix(m[1], "abstract"), Package: st.pkg}
		rest := p.header(c.Name, m[3], &c.Stereotypes, &c.Generics, model.Implementation)
		p.d.Classes = append(p.d.Classes, c)
		return p.openEntity(st, c, rest)
	}
	if m := interfaceRe.FindStringSubmatch(line); m != nil && headerTail.MatchString(m[2]) {
		i := &model.Interface{Name: m[1], Package: st.pkg}
		rest := p.header(i.Name, m[2], &i.Stereotypes, &i.Generics, model.Inheritance)
		p.d.Interfaces = append(p.d.Interfaces, i)
		return p.openEntity(st, i, rest)
	}
	if m := enumRe.FindStringSubmatch(line); m != nil && headerTail.MatchString(m[2]) {
		e := &model.Enum{Name: m[1], Package: st.pkg}
		rest := p.header(e.Name, m[2], &e.Stereotypes, nil, "")
		p.d.Enums = append(p.d.Enums, e)
		return p.openEntity(st, e, rest)
	}

	if rel, ok := parseRelationship(line); ok {
		p.d.Relationships = append(p.d.Relationships, rel)
		return st
	}
	if m := externalRe.FindStringSubmatch(line); m != nil {
		if e := p.d.Lookup(m[1]); e != nil {
			p.member(e, n, m[2])
			return st
		}
	}
	p.r.add(n, line, ReasonUnrecognized)
	return st
}

// nestedHeader reports whether a body line declares another entity and
// returns the header remainder. A bare "abstract" prefix is a member
// modifier here, as in "abstract List<T> items()".
func nestedHeader(line string) (string, bool) {
	if m := classRe.FindStringSubmatch(line); m != nil && m[1] != "abstract" && headerTail.MatchString(m[3]) {
		return m[3], true
	}
	if m := interfaceRe.FindStringSubmatch(line); m != nil && headerTail.MatchString(m[2]) {
		return m[2], true
	}
	if m := enumRe.FindStringSubmatch(line); m != nil && headerTail.MatchString(m[2]) {
		return m[2], true
	}
	return "", false
}

// isHeader reports whether line starts an entity, in or out of a body.
func isHeader(line string) bool {
	if strings.Contains(line, "(") {
		return false
	}
	if m := classRe.FindStringSubmatch(line); m != nil && headerTail.MatchString(m[3]) {
		return true
	}
	_, ok := nestedHeader(line)
	return ok
}

// segments splits a declaration that opens and closes blocks on one line,
// such as `package "p" { class A { +x: int } }`, into the lines it would
// take when written out. Quoted text and {tag} modifiers are kept whole.
func segments(line string) []string {
	if !strings.Contains(line, "}") || !(pkgLineRe.MatchString(line) || isHeader(line)) {
		return []string{line}
	}
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case inQuote:
			cur.WriteByte(c)
		case c == '{':
			if loc := modifierRe.FindStringIndex(line[i:]); loc != nil && loc[0] == 0 {
				cur.WriteString(line[i : i+loc[1]])
				i += loc[1] - 1
				continue
			}
			cur.WriteByte(c)
			flush()
		case c == '}':
			flush()
			out = append(out, "}")
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return out
}

func (p *run) openPackage(st scanState, m []string) scanState {
	name := m[1]
	if name == "" {
		name = m[2]
	}
	p.d.AddPackage(name)
	switch {
	case m[3] == "{":
		st.pkgOuter = append(st.pkgOuter, st.pkg)
		st.pkg = name
		st.pkgDepth++
	case m[3] == "":
		st.pkg = name
	}
	return st
}

func (p *run) closeBrace(st scanState, n int, line string) scanState {
	switch {
	case st.inEntity:
		st.entityDepth--
		if st.entityDepth <= 0 {
			st.entityDepth = 0
			st.inEntity = false
			st.entity = nil
		}
	case st.skipDepth > 0:
		st.skipDepth--
	case st.pkgDepth > 0:
		st.pkgDepth--
		if st.pkgDepth == 0 {
			st.pkg = ""
			st.pkgOuter = nil
		} else {
			last := len(st.pkgOuter) - 1
			st.pkg = st.pkgOuter[last]
			st.pkgOuter = st.pkgOuter[:last]
		}
	default:
		p.r.add(n, line, ReasonUnbalancedBrace)
	}
	return st
}

// openEntity registers e with the open package and decides whether a body
// follows. rest is the header remainder after the name, generics and clauses.
func (p *run) openEntity(st scanState, e model.Entity, rest string) scanState {
	if st.pkg != "" {
		p.d.AddToPackage(st.pkg, e.EntityName())
	}
	st.entity = e
	st.inEntity = false
	st.entityDepth = 0
	st.pendingBody = false
	switch {
	case strings.Contains(rest, "{") && strings.Contains(rest, "}"):
		st.entity = nil
	case strings.Contains(rest, "{"):
		st.inEntity = true
		st.entityDepth = 1
	default:
		st.pendingBody = true
	}
	return st
}

// header consumes stereotypes, generic parameters and extends/implements
// clauses from the text following an entity name. implKind is the
// relationship recorded for an implements clause; extends always records
// inheritance. It returns what is left, normally "{", "{}" or "".
func (p *run) header(name, rest string, stereotypes, generics *[]string, implKind model.RelationshipType) string {
	for _, m := range stereoRe.FindAllStringSubmatch(rest, -1) {
		*stereotypes = append(*stereotypes, m[1])
	}
	rest = strings.TrimSpace(stereoRe.ReplaceAllString(rest, ""))

	if strings.HasPrefix(rest, "<") {
		if end := matchingAngle(rest); end > 0 {
			if generics != nil {
				for _, g := range model.SplitTopLevel(rest[1:end], ',') {
					if g = strings.TrimSpace(g); g != "" {
						*generics = append(*generics, g)
					}
				}
			}
			rest = strings.TrimSpace(rest[end+1:])
		}
	}

	body := ""
	if i := strings.IndexByte(rest, '{'); i >= 0 {
		body = rest[i:]
		rest = strings.TrimSpace(rest[:i])
	}
	if implKind != "" {
		if m := implementRe.FindStringSubmatch(rest); m != nil {
			p.clause(name, m[1], implKind)
		}
		if m := extendsRe.FindStringSubmatch(rest); m != nil {
			p.clause(name, m[1], model.Inheritance)
		}
	}
	return body
}

func (p *run) clause(source, list string, kind model.RelationshipType) {
	for _, t := range model.SplitTopLevel(list, ',') {
		target := model.ParseType(t).Name
		if target == "" {
			continue
		}
		p.d.Relationships = append(p.d.Relationships, model.Relationship{Source: source, Target: target, Type: kind})
	}
}

func matchingAngle(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
