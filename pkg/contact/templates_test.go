package contact_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmayor1/portfolio/pkg/contact"
	"github.com/jpmayor1/portfolio/pkg/mailer"
)

func TestTemplateFS_Embedded(t *testing.T) {
	t.Parallel()

	fsys := contact.TemplateFS("")

	_, err := fs.Stat(fsys, contact.TemplateName)
	require.NoError(t, err)
	_, err = fs.Stat(fsys, "layouts/"+contact.LayoutName)
	require.NoError(t, err)
}

func TestTemplateFS_Override(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "layouts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, contact.TemplateName),
		[]byte("---\nSubject: \"Hello from {{.Name}}\"\n---\n# Custom\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "layouts", contact.LayoutName),
		[]byte(`<main>{{.Content}}<pre>{{.Data.Message}}</pre></main>`), 0o600))

	renderer := mailer.NewRenderer(contact.TemplateFS(dir))
	result, err := renderer.Render(contact.LayoutName, contact.TemplateName, contact.Submission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "<main><h1>Custom</h1>\n<pre>Hi</pre></main>", result.HTML)
	assert.Equal(t, "Hello from {{.Name}}", result.Metadata["Subject"])
}
