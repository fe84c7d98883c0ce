package parser

import (
	"regexp"
	"strings"

	"github.com/calumari/pumlgen/internal/model"
)

var (
	modifierRe   = regexp.MustCompile(`\{\s*(\w+)\s*\}`)
	memberNameRe = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
	enumValueRe  = regexp.MustCompile(`^[A-Za-z_$][\w$]*`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

const defaultType = "Object"

// modifiers is the set of {tag} tokens found on a member line.
type modifiers struct {
	static, final, abstract bool
	field, method           bool
}

// extractModifiers collects all {tag} tokens and returns the line without
// them.
func extractModifiers(line string) (modifiers, string) {
	var mods modifiers
	for _, m := range modifierRe.FindAllStringSubmatch(line, -1) {
		switch strings.ToLower(m[1]) {
		case "static", "classifier":
			mods.static = true
		case "final":
			mods.final = true
		case "abstract":
			mods.abstract = true
		case "field":
			mods.field = true
		case "method":
			mods.method = true
		}
	}
	clean := modifierRe.ReplaceAllString(line, " ")
	return mods, strings.TrimSpace(spaceRe.ReplaceAllString(clean, " "))
}

// splitVisibility maps a leading +, -, # or ~ to a visibility. Members
// without a symbol are public.
func splitVisibility(s string) (model.Visibility, string) {
	if s == "" {
		return model.Public, s
	}
	var v model.Visibility
	switch s[0] {
	case '+':
		v = model.Public
	case '-':
		v = model.Private
	case '#':
		v = model.Protected
	case '~':
		v = model.PackagePrivate
	default:
		return model.Public, s
	}
	return v, strings.TrimSpace(s[1:])
}

// keywordModifiers strips leading Java-style keywords such as "abstract"
// or "private". A visibility keyword applies only when no symbol was given.
func keywordModifiers(s string, mods *modifiers, vis *model.Visibility, symbol bool) string {
	for {
		word, rest, ok := strings.Cut(s, " ")
		if !ok {
			return s
		}
		switch word {
		case "abstract":
			mods.abstract = true
		case "static":
			mods.static = true
		case "final":
			mods.final = true
		case "public", "private", "protected":
			if !symbol {
				*vis = model.Visibility(word)
			}
		default:
			return s
		}
		s = strings.TrimSpace(rest)
	}
}

func hasMemberMarker(line string) bool {
	if line == "" {
		return false
	}
	if strings.ContainsRune("+-#~", rune(line[0])) {
		return true
	}
	return modifierRe.MatchString(line)
}

// member parses one body line of e and attaches the result. Lines that do
// not describe a member are reported.
func (p *run) member(e model.Entity, n int, line string) {
	if en, ok := e.(*model.Enum); ok && !hasMemberMarker(line) {
		p.enumValues(en, n, line)
		return
	}

	mods, clean := extractModifiers(line)
	vis, rest := splitVisibility(clean)
	symbol := rest != clean
	rest = strings.TrimSpace(strings.TrimSuffix(rest, ";"))
	rest = keywordModifiers(rest, &mods, &vis, symbol)
	if rest == "" {
		p.r.add(n, line, ReasonInvalidMember)
		return
	}

	if !mods.field {
		if m, ok := parseMethod(rest); ok {
			m.Visibility = vis
			m.IsStatic = mods.static
			m.IsAbstract = mods.abstract
			p.attachMethod(e, n, line, m)
			return
		}
	}
	if mods.method {
		p.r.add(n, line, ReasonInvalidMember)
		return
	}

	a, ok := parseAttribute(rest)
	if !ok {
		p.r.add(n, line, ReasonInvalidMember)
		return
	}
	a.Visibility = vis
	a.IsStatic = mods.static
	a.IsFinal = mods.final
	c, ok := e.(*model.Class)
	if !ok {
		p.r.add(n, line, ReasonUnsupportedMember)
		return
	}
	c.Attributes = append(c.Attributes, a)
}

// attachMethod stores m as a constructor when it is named after its class
// and declares no return type. Other methods without a return type are void.
func (p *run) attachMethod(e model.Entity, n int, line string, m model.Method) {
	isCtor := m.ReturnType == nil && m.Name == e.EntityName()
	switch ent := e.(type) {
	case *model.Class:
		if isCtor {
			ent.Constructors = append(ent.Constructors, m)
			return
		}
		ent.Methods = append(ent.Methods, withDefaultReturn(m))
	case *model.Interface:
		if isCtor {
			p.r.add(n, line, ReasonUnsupportedMember)
			return
		}
		ent.Methods = append(ent.Methods, withDefaultReturn(m))
	default:
		p.r.add(n, line, ReasonUnsupportedMember)
	}
}

// parseMethod recognizes "name(params)[: Type]" and the Java-style
// "Type name(params)". A method whose name equals the owning entity name
// and has no return type is returned with a nil ReturnType; the caller
// decides whether that is a constructor.
func parseMethod(s string) (model.Method, bool) {
	open := strings.IndexByte(s, '(')
	closing := strings.LastIndexByte(s, ')')
	if open <= 0 || closing < open {
		return model.Method{}, false
	}
	head := strings.TrimSpace(s[:open])
	tail := strings.TrimSpace(s[closing+1:])
	if tail != "" && !strings.HasPrefix(tail, ":") {
		return model.Method{}, false
	}

	name := head
	prefixType := ""
	if i := strings.LastIndexByte(head, ' '); i >= 0 {
		name = head[i+1:]
		prefixType = strings.TrimSpace(head[:i])
	}
	if !memberNameRe.MatchString(name) {
		return model.Method{}, false
	}

	m := model.Method{Name: name, Parameters: parseParams(s[open+1 : closing])}
	switch {
	case strings.HasPrefix(tail, ":"):
		rt := model.ParseType(strings.TrimSpace(tail[1:]))
		if rt.IsZero() {
			rt = model.TypeRef{Name: "void"}
		}
		m.ReturnType = &rt
	case prefixType != "":
		rt := model.ParseType(prefixType)
		m.ReturnType = &rt
	}
	return m, true
}

// withDefaultReturn fills the implicit void return of a non-constructor.
func withDefaultReturn(m model.Method) model.Method {
	if m.ReturnType == nil {
		rt := model.TypeRef{Name: "void"}
		m.ReturnType = &rt
	}
	return m
}

// parseAttribute recognizes "name[: Type]" and the Java-style "Type name".
// A trailing "= default" is dropped.
func parseAttribute(s string) (model.Attribute, bool) {
	if i := topLevelIndex(s, '='); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	var name, typ string
	if i := strings.IndexByte(s, ':'); i >= 0 {
		name = strings.TrimSpace(s[:i])
		typ = strings.TrimSpace(s[i+1:])
	} else {
		fields := strings.Fields(s)
		switch len(fields) {
		case 0:
			return model.Attribute{}, false
		case 1:
			name = fields[0]
		default:
			name = fields[len(fields)-1]
			typ = strings.Join(fields[:len(fields)-1], " ")
		}
	}
	if !memberNameRe.MatchString(name) {
		return model.Attribute{}, false
	}
	if typ == "" {
		typ = defaultType
	}
	return model.Attribute{Name: name, Type: model.ParseType(typ)}, true
}

// parseParams splits a parameter list on top-level commas so generic
// arguments stay intact.
func parseParams(s string) []model.Parameter {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var params []model.Parameter
	for _, tok := range model.SplitTopLevel(s, ',') {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		var name, typ string
		if i := strings.IndexByte(tok, ':'); i >= 0 {
			name = strings.TrimSpace(tok[:i])
			typ = strings.TrimSpace(tok[i+1:])
		} else if fields := strings.Fields(tok); len(fields) > 1 {
			name = fields[len(fields)-1]
			typ = strings.Join(fields[:len(fields)-1], " ")
		} else {
			name = tok
		}
		if typ == "" {
			typ = defaultType
		}
		params = append(params, model.Parameter{Name: name, Type: model.ParseType(typ)})
	}
	return params
}

func (p *run) enumValues(e *model.Enum, n int, line string) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")
	for _, v := range model.SplitTopLevel(line, ',') {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		name := enumValueRe.FindString(v)
		if name == "" {
			p.r.add(n, line, ReasonInvalidEnumValue)
			continue
		}
		e.Values = append(e.Values, name)
	}
}

func topLevelIndex(s string, b byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		case b:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
