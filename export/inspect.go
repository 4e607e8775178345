package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlideSummary is the text read back from one slide of a pptx file.
type SlideSummary struct {
	Index int
	Title string
	Texts []string
}

// Inspect reads a pptx file and returns the text of every slide. The first
// non-empty paragraph of a slide is taken as its title.
func Inspect(path string) ([]SlideSummary, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, wrapError(FormatPPTX, "read", fmt.Errorf("failed to open PPT file: %w", err))
	}

	slides := pres.GetAllSlides()
	out := make([]SlideSummary, 0, len(slides))
	for i, slide := range slides {
		sum := SlideSummary{Index: i + 1}
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				if sum.Title == "" {
					sum.Title = text
				} else {
					sum.Texts = append(sum.Texts, text)
				}
			}
		}
		out = append(out, sum)
	}
	return out, nil
}
