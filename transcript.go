package streammd

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/pollyhq/go-streammd/internal/assets"
	"github.com/pollyhq/go-streammd/internal/fileutil"
	"github.com/pollyhq/go-streammd/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pdfRenderer            = (*rodRenderer)(nil)
)

// katexVersion pins the CDN assets referenced by exported documents.
// Math spans are emitted as .math elements and rendered client side,
// so the exported HTML needs no server-side LaTeX toolchain.
const katexVersion = "0.16.11"

// Exporter converts a normalized transcript to a standalone HTML
// document or a PDF. Create with NewExporter, call Close when done to
// release the headless browser if one was started.
type Exporter struct {
	normalizer    *Normalizer
	htmlConverter pipeline.HTMLConverter
	pdf           pdfRenderer
	timeout       time.Duration
	title         string
	meta          string
	extraCSS      string
	styleName     string
}

// NewExporter creates an Exporter with default configuration.
func NewExporter(opts ...ExportOption) *Exporter {
	e := &Exporter{
		normalizer:    NewNormalizer(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
		timeout:       defaultExportTimeout,
		styleName:     assets.DefaultStyleName,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pdf == nil {
		e.pdf = newRodRenderer(e.timeout)
	}
	return e
}

// ExportHTML normalizes the transcript markdown and renders it as a
// complete HTML5 document: embedded stylesheet, KaTeX auto-render for
// math spans, and citation anchors ready to be targeted by a reference
// list.
func (e *Exporter) ExportHTML(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyTranscript
	}

	normalized := e.normalizer.Normalize(ctx, content)

	fragment, err := e.htmlConverter.ToHTML(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	fragment = pipeline.RewriteMathCodeSpans(fragment)

	css, err := assets.LoadStyle(e.styleName)
	if err != nil {
		return "", err
	}
	if e.extraCSS != "" {
		css += "\n" + e.extraCSS
	}

	doc := buildDocument(e.title, e.meta, fragment)
	return pipeline.InjectCSS(doc, css), nil
}

// ExportPDF renders the transcript to PDF bytes using headless Chrome.
// Uses US Letter format with 0.5 inch margins.
func (e *Exporter) ExportPDF(ctx context.Context, content string) ([]byte, error) {
	htmlDoc, err := e.ExportHTML(ctx, content)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlDoc, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return e.pdf.RenderFromFile(ctx, tmpPath)
}

// Close releases browser resources held by the PDF renderer.
func (e *Exporter) Close() error {
	if closer, ok := e.pdf.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// buildDocument wraps an HTML fragment in a full HTML5 document with
// the KaTeX runtime. The stylesheet is injected afterwards so it lands
// inside <head> like any other style.
func buildDocument(title, meta, fragment string) string {
	if title == "" {
		title = "Transcript"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"https://cdn.jsdelivr.net/npm/katex@%s/dist/katex.min.css\">\n", katexVersion)
	fmt.Fprintf(&b, "<script defer src=\"https://cdn.jsdelivr.net/npm/katex@%s/dist/katex.min.js\"></script>\n", katexVersion)
	fmt.Fprintf(&b, "<script defer src=\"https://cdn.jsdelivr.net/npm/katex@%s/dist/contrib/auto-render.min.js\"></script>\n", katexVersion)
	b.WriteString(`<script>
document.addEventListener("DOMContentLoaded", function() {
  renderMathInElement(document.body, {
    delimiters: [
      {left: "$$", right: "$$", display: true},
      {left: "$", right: "$", display: false}
    ],
    throwOnError: false
  });
});
</script>
`)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1 class=\"transcript-title\">%s</h1>\n", html.EscapeString(title))
	if meta != "" {
		fmt.Fprintf(&b, "<p class=\"transcript-meta\">%s</p>\n", html.EscapeString(meta))
	}
	b.WriteString(fragment)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
