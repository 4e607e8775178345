package export

import (
	"fmt"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/LGhoull/priemer-aufgabe-1/deck"
)

// handoutTableTwips is the printable table width in twentieths of a point.
const handoutTableTwips = 9000

// WordRenderer writes a handout document using GoWord (pure Go)
type WordRenderer struct{}

// NewWordRenderer creates a new Word renderer
func NewWordRenderer() *WordRenderer {
	return &WordRenderer{}
}

// Format implements Renderer.
func (r *WordRenderer) Format() Format { return FormatDOCX }

// Render writes one heading per slide followed by its bullets or table.
func (r *WordRenderer) Render(d *deck.Deck) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = d.Title
	doc.Properties.Creator = d.Author
	doc.Properties.Description = fmt.Sprintf("Handout, %d Folien", d.Len())

	sec := doc.AddSection()

	for _, s := range d.Slides {
		switch s.Kind {
		case deck.KindTitle:
			sec.AddTitle(s.Title, 1)
			if s.Subtitle != "" {
				sec.AddText(s.Subtitle,
					&style.FontStyle{Size: 14, Color: "64748B"},
					&style.ParagraphStyle{Alignment: style.AlignCenter})
			}
		case deck.KindContent:
			sec.AddTitle(s.Title, 2)
			for _, b := range s.Bullets {
				sec.AddText(bulletGlyph(b.Level)+" "+b.Text, bulletFont(b.Level), bulletParagraph(b.Level))
			}
		case deck.KindTable:
			sec.AddTitle(s.Title, 2)
			widths := twipWidths(s.Table)

			ts := &style.TableStyle{Width: handoutTableTwips, Alignment: "center"}
			ts.SetAllBorders("single", 4, "D9D9D9")
			tbl := sec.AddTable(ts)
			tbl.Grid = widths

			headerRow := tbl.AddRow(0, &style.RowStyle{IsHeader: true})
			for i, title := range s.Table.Header() {
				headerRow.AddCell(widths[i], &style.CellStyle{
					Shading: &style.Shading{Fill: "4472C4"},
				}).AddText(title, &style.FontStyle{Bold: true, Size: 12, Color: "FFFFFF"}, nil)
			}
			for _, rowData := range s.Table.Data() {
				row := tbl.AddRow(0, nil)
				for i, cellValue := range rowData {
					row.AddCell(widths[i], nil).AddText(cellValue, &style.FontStyle{Size: 11}, nil)
				}
			}
		}
		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, wrapError(FormatDOCX, "save", fmt.Errorf("failed to write Word file: %w", err))
	}
	return data, nil
}

// twipWidths scales the table's column widths to the handout width.
func twipWidths(table *deck.Table) []int {
	inches := table.Widths(float64(handoutTableTwips) / 1440)
	widths := make([]int, len(inches))
	for i, w := range inches {
		widths[i] = int(w * 1440)
	}
	return widths
}

func bulletFont(level int) *style.FontStyle {
	switch level {
	case 0:
		return &style.FontStyle{Bold: true, Size: 12, Color: "1E40AF"}
	case 1:
		return &style.FontStyle{Size: 11, Color: "334155"}
	default:
		return &style.FontStyle{Size: 10, Color: "64748B"}
	}
}

func bulletParagraph(level int) *style.ParagraphStyle {
	switch level {
	case 0:
		return &style.ParagraphStyle{Indent: 360}
	case 1:
		return &style.ParagraphStyle{Indent: 720}
	default:
		return &style.ParagraphStyle{Indent: 1080}
	}
}
