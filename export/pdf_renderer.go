package export

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/LGhoull/priemer-aufgabe-1/deck"
)

// gridColumns is maroto's row grid size.
const gridColumns = 12

// headerCellStyle fills table header cells with the slide header color.
var headerCellStyle = &props.Cell{
	BackgroundColor: argbColor(tableCellStyle(0).Fill),
}

// argbColor converts an ARGB hex string such as "FF4472C4" to a maroto color.
func argbColor(argb string) *props.Color {
	v, err := strconv.ParseUint(argb, 16, 32)
	if err != nil {
		return &props.Color{}
	}
	return &props.Color{Red: int(v >> 16 & 0xFF), Green: int(v >> 8 & 0xFF), Blue: int(v & 0xFF)}
}

// PDFRenderer writes a printable handout using maroto
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Format implements Renderer.
func (r *PDFRenderer) Format() Format { return FormatPDF }

// Render lays the slides out one after another on A4 pages.
func (r *PDFRenderer) Render(d *deck.Deck) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	for _, s := range d.Slides {
		switch s.Kind {
		case deck.KindTitle:
			r.addTitle(m, s.Title, s.Subtitle)
		case deck.KindContent:
			r.addHeading(m, s.Title)
			r.addBullets(m, s.Bullets)
		case deck.KindTable:
			r.addHeading(m, s.Title)
			r.addTable(m, s.Table)
		}
		m.AddRow(5)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, wrapError(FormatPDF, "generate", fmt.Errorf("failed to generate PDF: %w", err))
	}
	return document.GetBytes(), nil
}

func (r *PDFRenderer) addTitle(m core.Maroto, title, subtitle string) {
	m.AddRow(20,
		col.New(gridColumns).Add(
			text.New(transliterate.Replace(title), props.Text{
				Family: fontfamily.Arial,
				Size:   20,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  &props.Color{Red: 30, Green: 64, Blue: 175},
			}),
		),
	)
	if subtitle != "" {
		m.AddRow(10,
			col.New(gridColumns).Add(
				text.New(transliterate.Replace(subtitle), props.Text{
					Family: fontfamily.Arial,
					Size:   12,
					Align:  align.Center,
					Color:  &props.Color{Red: 100, Green: 116, Blue: 139},
				}),
			),
		)
	}
}

func (r *PDFRenderer) addHeading(m core.Maroto, title string) {
	m.AddRow(10,
		col.New(gridColumns).Add(
			text.New(transliterate.Replace(title), props.Text{
				Family: fontfamily.Arial,
				Size:   13,
				Style:  fontstyle.Bold,
				Color:  &props.Color{Red: 30, Green: 64, Blue: 175},
			}),
		),
	)
}

func (r *PDFRenderer) addBullets(m core.Maroto, bullets []deck.Bullet) {
	for _, b := range bullets {
		line := transliterate.Replace(bulletMarker(b.Level) + b.Text)
		if b.Level == 0 {
			m.AddRow(7,
				col.New(gridColumns).Add(
					text.New(line, props.Text{
						Family: fontfamily.Arial,
						Size:   10,
						Style:  fontstyle.Bold,
					}),
				),
			)
			continue
		}
		m.AddRow(6,
			col.New(gridColumns).Add(
				text.New(line, props.Text{
					Family: fontfamily.Arial,
					Size:   9,
				}),
			),
		)
	}
}

// addTable maps the deck's column widths onto maroto's 12 column grid.
func (r *PDFRenderer) addTable(m core.Maroto, table *deck.Table) {
	spans := gridSpans(table, gridColumns)

	for rowIdx, row := range table.Rows {
		st := tableCellStyle(rowIdx)
		cols := make([]core.Col, 0, len(row))
		for i, value := range row {
			value = transliterate.Replace(value)
			if st.Header {
				cols = append(cols, col.New(spans[i]).Add(
					text.New(value, props.Text{
						Family: fontfamily.Arial,
						Size:   9,
						Style:  fontstyle.Bold,
						Align:  align.Center,
						Top:    1.5,
						Color:  &props.WhiteColor,
					}),
				).WithStyle(headerCellStyle))
				continue
			}
			cols = append(cols, col.New(spans[i]).Add(
				text.New(value, props.Text{
					Family: fontfamily.Arial,
					Size:   9,
					Align:  align.Left,
				}),
			))
		}
		m.AddRow(7, cols...)
	}
}

// gridSpans converts inch widths into grid spans, giving every column at
// least one span. The spans sum to grid whenever there are no more columns
// than grid units.
func gridSpans(table *deck.Table, grid int) []int {
	widths := table.Widths(float64(grid))
	spans := make([]int, len(widths))
	total := 0
	for i, w := range widths {
		spans[i] = int(w)
		if spans[i] < 1 {
			spans[i] = 1
		}
		total += spans[i]
	}
	// narrow columns bumped to one span may overflow the grid
	for total > grid {
		worst := -1
		for i := range spans {
			if spans[i] > 1 && (worst < 0 || float64(spans[i])-widths[i] > float64(spans[worst])-widths[worst]) {
				worst = i
			}
		}
		if worst < 0 {
			break
		}
		spans[worst]--
		total--
	}
	// hand leftover grid units to the columns that lost the most to rounding
	for total < grid {
		best := 0
		for i := range spans {
			if widths[i]-float64(spans[i]) > widths[best]-float64(spans[best]) {
				best = i
			}
		}
		spans[best]++
		total++
	}
	return spans
}
