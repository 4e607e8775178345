package export

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/LGhoull/priemer-aufgabe-1/deck"
)

// PPTRenderer draws a deck with GoPPT (pure Go, zero dependencies)
type PPTRenderer struct{}

// NewPPTRenderer creates a new GoPPT renderer
func NewPPTRenderer() *PPTRenderer {
	return &PPTRenderer{}
}

// Format implements Renderer.
func (r *PPTRenderer) Format() Format { return FormatPPTX }

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// Render draws every slide in deck order and encodes the presentation.
func (r *PPTRenderer) Render(d *deck.Deck) ([]byte, error) {
	p := ppt.New()
	p.GetLayout().SetLayout(ppt.LayoutScreen4x3)
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Author

	for i, s := range d.Slides {
		// a new presentation already holds one empty slide
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}

		switch s.Kind {
		case deck.KindTitle:
			r.createTitleSlide(slide, s.Title, s.Subtitle)
		case deck.KindContent:
			r.createContentSlide(slide, s.Title, s.Bullets)
			r.addFooter(slide, i+1, d.Len())
		case deck.KindTable:
			r.createTableSlide(slide, s.Title, s.Table)
			r.addFooter(slide, i+1, d.Len())
		default:
			return nil, wrapError(FormatPPTX, "render", fmt.Errorf("slide %d: unsupported kind %s", i+1, s.Kind))
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, wrapError(FormatPPTX, "writer", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, wrapError(FormatPPTX, "save", err)
	}
	return buf.Bytes(), nil
}

// createTitleSlide draws the opening slide: accent bars, title, subtitle
func (r *PPTRenderer) createTitleSlide(slide *ppt.Slide, title, subtitle string) {
	topBar := slide.CreateRichTextShape()
	topBar.SetOffsetX(0).SetOffsetY(0)
	topBar.SetWidth(emu(slideWidth)).SetHeight(emu(0.15))
	topBar.SetFill(solidFill(colorAccent))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(emu(marginLeft)).SetOffsetY(emu(2.4))
	titleShape.SetWidth(emu(contentWidth)).SetHeight(emu(1.2))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontTitle).SetBold(true).SetColor(ppt.NewColor(colorHeading))
	alignCenter(titleShape.GetActiveParagraph())

	if subtitle != "" {
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(emu(1.0)).SetOffsetY(emu(3.9))
		subShape.SetWidth(emu(8.0)).SetHeight(emu(0.8))
		subShape.SetFill(solidFill(colorSubtleFill))
		subTr := subShape.CreateTextRun(subtitle)
		subTr.GetFont().SetSize(fontSubtitle).SetColor(ppt.NewColor(colorMuted))
		alignCenter(subShape.GetActiveParagraph())
	}

	bottomBar := slide.CreateRichTextShape()
	bottomBar.SetOffsetX(0).SetOffsetY(emu(slideHeight - 0.125))
	bottomBar.SetWidth(emu(slideWidth)).SetHeight(emu(0.125))
	bottomBar.SetFill(solidFill(colorAccent))
}

// addSlideHeader draws the accent bar and title shared by content and table slides
func (r *PPTRenderer) addSlideHeader(slide *ppt.Slide, title string) {
	topBar := slide.CreateRichTextShape()
	topBar.SetOffsetX(0).SetOffsetY(0)
	topBar.SetWidth(emu(slideWidth)).SetHeight(emu(headerBarInch))
	topBar.SetFill(solidFill(colorAccent))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(emu(marginLeft)).SetOffsetY(emu(0.3))
	titleShape.SetWidth(emu(contentWidth)).SetHeight(emu(0.6))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontHeading).SetBold(true).SetColor(ppt.NewColor(colorHeading))
}

// addFooter writes the slide number in the bottom right corner
func (r *PPTRenderer) addFooter(slide *ppt.Slide, index, total int) {
	footer := slide.CreateRichTextShape()
	footer.SetOffsetX(emu(slideWidth - 2.4)).SetOffsetY(emu(footerTop))
	footer.SetWidth(emu(2.0)).SetHeight(emu(footerHeight))
	tr := footer.CreateTextRun(fmt.Sprintf("%d / %d", index, total))
	tr.GetFont().SetSize(fontFooter).SetColor(ppt.NewColor(colorMuted))
	footer.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}

// createContentSlide writes one bulleted paragraph per bullet into a single
// body shape. The bullet level becomes the paragraph level.
func (r *PPTRenderer) createContentSlide(slide *ppt.Slide, title string, bullets []deck.Bullet) {
	r.addSlideHeader(slide, title)
	if len(bullets) == 0 {
		return
	}

	body := slide.CreateRichTextShape()
	body.SetOffsetX(emu(marginLeft)).SetOffsetY(emu(bodyTop))
	body.SetWidth(emu(contentWidth)).SetHeight(emu(bodyHeight))

	for i, b := range bullets {
		para := body.GetActiveParagraph()
		if i > 0 {
			para = body.CreateParagraph()
		}
		align := ppt.NewAlignment()
		align.Level = b.Level
		para.SetAlignment(align)
		para.SetBullet(ppt.NewBullet().SetCharBullet(bulletGlyph(b.Level)))

		tr := para.CreateTextRun(b.Text)
		switch b.Level {
		case 0:
			tr.GetFont().SetSize(fontBullet0).SetBold(true).SetColor(ppt.NewColor(colorHeading))
		case 1:
			tr.GetFont().SetSize(fontBullet1).SetColor(ppt.NewColor(colorBody))
		default:
			tr.GetFont().SetSize(fontBullet2).SetColor(ppt.NewColor(colorMuted))
		}
	}
}

// createTableSlide lays the table out as one text shape per cell
func (r *PPTRenderer) createTableSlide(slide *ppt.Slide, title string, table *deck.Table) {
	r.addSlideHeader(slide, title)

	widths := table.Widths(tableWidth)
	rowHeight := tableRowHeight(len(table.Rows))

	y := tableTop
	for rowIdx, row := range table.Rows {
		st := tableCellStyle(rowIdx)
		x := tableLeft
		for colIdx, text := range row {
			cell := slide.CreateRichTextShape()
			cell.SetOffsetX(emu(x)).SetOffsetY(emu(y))
			cell.SetWidth(emu(widths[colIdx])).SetHeight(emu(rowHeight))
			if st.Fill != "" {
				cell.SetFill(solidFill(st.Fill))
			}

			tr := cell.CreateTextRun(text)
			if st.Header {
				tr.GetFont().SetSize(fontTableHead).SetBold(st.Bold).SetColor(ppt.NewColor(st.Color))
				alignCenter(cell.GetActiveParagraph())
			} else {
				tr.GetFont().SetSize(fontTableCell).SetBold(st.Bold).SetColor(ppt.NewColor(st.Color))
			}
			x += widths[colIdx]
		}
		y += rowHeight
	}
}
