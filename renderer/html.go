package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

const css = `
html { font-family: sans-serif; }
body { margin-left: 10%; margin-right: 10%; }
table { border-collapse: collapse; }
th { text-align: left; padding-right: 4em; }
td { padding-right: 4em; }
li li { color: #aaaaaa; }
`

// WithUnsafe keeps inline HTML, needed for the upload form.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// HTML converts a markdown report into a standalone styled HTML page.
func HTML(title, md string) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("cannot render report to HTML: %w", err)
	}
	return fmt.Sprintf("<html>\n<head>\n<title>%s</title>\n<style type=%q>%s</style>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), "text/css", css, body.String()), nil
}
