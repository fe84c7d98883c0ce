package parser

import "strings"

// sanitize strips diagram markers and comments. The returned slice has one
// entry per line of src so that line numbers stay meaningful.
func sanitize(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = stripBlockComments(src)
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		t := strings.TrimSpace(l)
		switch {
		case strings.HasPrefix(t, "'"):
			lines[i] = ""
		case strings.HasPrefix(t, "@startuml"), strings.HasPrefix(t, "@enduml"):
			lines[i] = ""
		}
	}
	return lines
}

// stripBlockComments removes /* ... */ and /' ... '/ comments, keeping the
// newlines they span. An unterminated comment runs to the end of src.
func stripBlockComments(src string) string {
	var sb strings.Builder
	sb.Grow(len(src))
	for i := 0; i < len(src); {
		if i+1 < len(src) && src[i] == '/' && (src[i+1] == '*' || src[i+1] == '\'') {
			closer := "*/"
			if src[i+1] == '\'' {
				closer = "'/"
			}
			end := strings.Index(src[i+2:], closer)
			var body string
			if end < 0 {
				body = src[i:]
				i = len(src)
			} else {
				body = src[i : i+2+end+2]
				i += 2 + end + 2
			}
			sb.WriteString(strings.Repeat("\n", strings.Count(body, "\n")))
			continue
		}
		sb.WriteByte(src[i])
		i++
	}
	return sb.String()
}
