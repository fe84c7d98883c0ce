package generator

// Options holds settings shared by every language generator.
type Options struct {
	IndentSize  int    // spaces per level; zero keeps the language default
	Banner      bool   // emit a "Code generated" comment first
	Version     string // pumlgen build version shown in the banner
	Source      string // diagram file name shown in the banner
	PackageName string // Go package clause; other languages ignore it
}

// Indent returns the configured indent size or def when unset.
func (o Options) Indent(def int) int {
	if o.IndentSize > 0 {
		return o.IndentSize
	}
	return def
}
