package generator

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"
)

const (
	tmplBanner      = "banner"
	tmplPlaceholder = "placeholder"
)

const templatePattern = "templates/*.gtpl"

//go:embed templates/*.gtpl
var templatesFS embed.FS

var (
	commentTmpl  *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

// validateTemplates ensures all required templates are defined
func validateTemplates() error {
	for _, name := range []string{tmplBanner, tmplPlaceholder} {
		if commentTmpl.Lookup(name) == nil {
			return fmt.Errorf("required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplBanner).ParseFS(templatesFS, templatePattern)
		if tmplInitErr != nil {
			return
		}
		commentTmpl = t
		tmplInitErr = validateTemplates()
	})
	return tmplInitErr
}

// execute renders an embedded template. The templates are compiled into the
// binary, so a failure here is a build defect and panics.
func execute(name string, data any) string {
	if err := ensureTemplates(); err != nil {
		panic(err)
	}
	var out bytes.Buffer
	if err := commentTmpl.ExecuteTemplate(&out, name, data); err != nil {
		panic(err)
	}
	return out.String()
}

// Banner returns the "Code generated" line commented with prefix, or an
// empty string when opts disables it.
func Banner(prefix string, opts Options) string {
	if !opts.Banner {
		return ""
	}
	return execute(tmplBanner, struct {
		Prefix, Version, Source string
	}{prefix, opts.Version, opts.Source})
}

// Placeholder returns the comment marking an unimplemented body.
func Placeholder(prefix, name string) string {
	return execute(tmplPlaceholder, struct {
		Prefix, Name string
	}{prefix, name})
}
