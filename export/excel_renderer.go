package export

import (
	"bytes"
	"fmt"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/LGhoull/priemer-aufgabe-1/deck"
)

// maxSheetName is Excel's limit on worksheet title length.
const maxSheetName = 31

// ExcelRenderer writes the deck's tables to a workbook using GoExcel (pure Go)
type ExcelRenderer struct{}

// NewExcelRenderer creates a new GoExcel renderer
func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

// Format implements Renderer.
func (r *ExcelRenderer) Format() Format { return FormatXLSX }

// Render writes one worksheet per table slide, in deck order.
func (r *ExcelRenderer) Render(d *deck.Deck) ([]byte, error) {
	tables := d.Tables()
	if len(tables) == 0 {
		return nil, wrapError(FormatXLSX, "render", fmt.Errorf("no table data to export"))
	}

	wb := gospreadsheet.New()

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  12,
			Color: "FFFFFF",
			Name:  "Calibri",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "4472C4",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 11,
			Name: "Calibri",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	used := make(map[string]bool)
	for i, s := range tables {
		name := uniqueSheetName(sheetName(s.Title, i+1), used)

		var ws *gospreadsheet.Worksheet
		if i == 0 {
			ws = wb.GetActiveSheet()
			ws.SetTitle(name)
		} else {
			var err error
			ws, err = wb.AddSheet(name)
			if err != nil {
				return nil, wrapError(FormatXLSX, "sheet", fmt.Errorf("failed to create sheet %s: %w", name, err))
			}
		}

		for rowIdx, row := range s.Table.Rows {
			st := dataStyle
			if tableCellStyle(rowIdx).Header {
				st = headerStyle
			}
			for colIdx, value := range row {
				cellName, err := gospreadsheet.CellName(rowIdx, colIdx)
				if err != nil {
					return nil, wrapError(FormatXLSX, "cell", err)
				}
				ws.SetCellValue(cellName, value)
				ws.SetCellStyle(cellName, st)
			}
		}

		// deck widths are inches; roughly 10 characters per inch
		for colIdx, w := range s.Table.Widths(float64(s.Table.Columns()) * 2.0) {
			ws.SetColumnWidth(colIdx, w*10)
		}
		ws.SetRowHeight(0, 25)
		ws.FreezePane("A2")
	}

	wb.Properties.Title = d.Title
	wb.Properties.Creator = d.Author
	wb.Properties.Description = "Tabellen der Präsentation"
	wb.Properties.Subject = "Betrugserkennung"
	wb.Properties.Category = "Data Mining"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, wrapError(FormatXLSX, "save", fmt.Errorf("failed to write Excel file: %w", err))
	}
	return buf.Bytes(), nil
}

// sheetName strips characters Excel rejects in worksheet titles and keeps
// the result within maxSheetName runes.
func sheetName(title string, n int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, title)
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Tabelle %d", n)
	}
	if runes := []rune(name); len(runes) > maxSheetName {
		name = strings.TrimSpace(string(runes[:maxSheetName]))
	}
	return name
}

func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		runes := []rune(name)
		if len(runes)+len([]rune(suffix)) > maxSheetName {
			runes = runes[:maxSheetName-len([]rune(suffix))]
		}
		candidate = string(runes) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
