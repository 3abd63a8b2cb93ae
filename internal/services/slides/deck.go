// Package slides renders a lecture outline into a PowerPoint (.pptx) deck held in memory.
package slides

import (
	"fmt"
	"strings"
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
)

// Slide layouts available in the generated master
const (
	layoutTitle   = 1
	layoutContent = 2
)

// Paragraph is one line of text inside a placeholder
type Paragraph struct {
	Text  string
	Level int
}

// Slide is a single slide of the deck, before serialization
type Slide struct {
	Layout int
	Title  string
	Body   []Paragraph
}

// BuildSlides lays out the outline: a title slide, then a key-points slide and a details slide per section
func BuildSlides(outline *models.LectureOutline, generatedAt time.Time) []Slide {
	slides := make([]Slide, 0, 1+2*len(outline.Sections))

	slides = append(slides, Slide{
		Layout: layoutTitle,
		Title:  outline.Title,
		Body:   []Paragraph{{Text: fmt.Sprintf("Generated on: %s", generatedAt.Format("2006-01-02"))}},
	})

	for _, section := range outline.Sections {
		keyPoints := make([]Paragraph, 0, len(section.KeyPoints)+1)
		keyPoints = append(keyPoints, Paragraph{Text: "Key Points:"})
		for _, point := range section.KeyPoints {
			keyPoints = append(keyPoints, Paragraph{Text: "• " + point, Level: 1})
		}

		slides = append(slides, Slide{
			Layout: layoutContent,
			Title:  section.Title,
			Body:   keyPoints,
		})

		slides = append(slides, Slide{
			Layout: layoutContent,
			Title:  section.Title + " - Details",
			Body:   splitParagraphs(section.Details),
		})
	}

	return slides
}

// splitParagraphs turns free text into one paragraph per line
func splitParagraphs(text string) []Paragraph {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	paragraphs := make([]Paragraph, 0, len(lines))
	for _, line := range lines {
		paragraphs = append(paragraphs, Paragraph{Text: line})
	}
	return paragraphs
}
