package slides

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
)

// ErrEmptyOutline is returned for outlines without a title
var ErrEmptyOutline = errors.New("outline has no title")

// Renderer serializes outlines into PPTX bytes
type Renderer struct {
	templates *template.Template
}

// NewRenderer creates a renderer with parsed part templates
func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"esc": escapeXML,
		"add": func(a, b int) int { return a + b },
	}

	return &Renderer{
		templates: template.Must(template.New("pptx").Funcs(funcs).Parse(partTemplates)),
	}
}

// deckData feeds the part templates
type deckData struct {
	Title   string
	Created string
	Slides  []Slide
}

// templatedPart is a package part produced from a named template
type templatedPart struct {
	name     string
	template string
	data     any
}

// Render builds the deck and returns the zipped presentation
func (r *Renderer) Render(outline *models.LectureOutline, generatedAt time.Time) ([]byte, error) {
	if outline == nil || outline.Title == "" {
		return nil, ErrEmptyOutline
	}

	data := deckData{
		Title:   outline.Title,
		Created: generatedAt.UTC().Format(time.RFC3339),
		Slides:  BuildSlides(outline, generatedAt),
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// Templated parts
	templated := []templatedPart{
		{"[Content_Types].xml", "contentTypes", data},
		{"docProps/core.xml", "core", data},
		{"docProps/app.xml", "app", data},
		{"ppt/presentation.xml", "presentation", data},
		{"ppt/_rels/presentation.xml.rels", "presentationRels", data},
	}
	for i, s := range data.Slides {
		templated = append(templated,
			templatedPart{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), "slide", s},
			templatedPart{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), "slideRels", s},
		)
	}
	for _, part := range templated {
		var content bytes.Buffer
		if err := r.templates.ExecuteTemplate(&content, part.template, part.data); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", part.name, err)
		}
		if err := writePart(zw, part.name, content.Bytes()); err != nil {
			return nil, err
		}
	}

	// Static parts
	static := []struct {
		name    string
		content string
	}{
		{"_rels/.rels", rootRels},
		{"ppt/presProps.xml", presPropsXML},
		{"ppt/tableStyles.xml", tableStylesXML},
		{"ppt/theme/theme1.xml", themeXML},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRels},
		{"ppt/slideLayouts/slideLayout1.xml", titleLayoutXML},
		{"ppt/slideLayouts/slideLayout2.xml", contentLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRels},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", layoutRels},
	}
	for _, part := range static {
		if err := writePart(zw, part.name, []byte(part.content)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize presentation: %w", err)
	}

	return buf.Bytes(), nil
}

func writePart(zw *zip.Writer, name string, content []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
