package contact

import (
	"embed"
	"io/fs"
	"os"
)

const (
	// TemplateName is the markdown template the notification is rendered from.
	TemplateName = "contact.md"
	// LayoutName is the HTML layout wrapping the rendered template.
	LayoutName = "contact.html"
)

//go:embed templates
var embedded embed.FS

// TemplateFS returns the notification templates. An empty dir selects the
// templates compiled into the binary; otherwise dir must hold contact.md and
// layouts/contact.html.
func TemplateFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return sub
}
