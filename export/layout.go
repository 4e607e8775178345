package export

import "strings"

// Slide geometry in inches on the 4:3 page (ppt.LayoutScreen4x3).
const (
	emuPerInch = 914400

	slideWidth    = 10.0
	slideHeight   = 7.5
	marginLeft    = 0.4
	contentWidth  = 9.2
	bodyTop       = 1.2
	bodyHeight    = 5.6
	tableLeft     = 1.0
	tableTop      = 2.0
	tableWidth    = 8.0
	tableRowInch  = 0.8
	tableMaxInch  = 4.9
	headerBarInch = 0.08
	footerTop     = 7.0
	footerHeight  = 0.3
)

// Font sizes (pt)
const (
	fontTitle     = 36
	fontSubtitle  = 20
	fontHeading   = 22
	fontBullet0   = 16
	fontBullet1   = 14
	fontBullet2   = 12
	fontTableHead = 12
	fontTableCell = 11
	fontFooter    = 9
)

// Colors (ARGB)
const (
	colorAccent     = "FF3B82F6"
	colorHeading    = "FF1E40AF"
	colorBody       = "FF334155"
	colorMuted      = "FF64748B"
	colorTableHead  = "FF4472C4"
	colorSubtleFill = "FFF8FAFC"
)

func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}

// cellStyle describes how one table cell is drawn. Row 0 is the header.
type cellStyle struct {
	Header bool
	Bold   bool
	// Fill is an ARGB color; empty means no fill.
	Fill  string
	Color string
}

func tableCellStyle(row int) cellStyle {
	if row == 0 {
		return cellStyle{Header: true, Bold: true, Fill: colorTableHead, Color: "FFFFFFFF"}
	}
	return cellStyle{Color: colorBody}
}

// tableRowHeight spreads rows at tableRowInch each but keeps the whole
// table inside tableMaxInch.
func tableRowHeight(rows int) float64 {
	if rows <= 0 {
		return tableRowInch
	}
	if float64(rows)*tableRowInch > tableMaxInch {
		return tableMaxInch / float64(rows)
	}
	return tableRowInch
}

// bulletGlyph is the bullet character drawn for a level.
func bulletGlyph(level int) string {
	switch level {
	case 0:
		return "•"
	case 1:
		return "–"
	default:
		return "◦"
	}
}

// bulletMarker is the plain-text form used by the handouts, where the
// level is shown by indentation.
func bulletMarker(level int) string {
	return strings.Repeat(" ", 6*level) + bulletGlyph(level) + " "
}

// transliterate maps pictographs missing from the PDF core fonts.
var transliterate = strings.NewReplacer(
	"✓", "+",
	"❌", "x",
	"⚠", "!",
	"⭐", "*",
	"→", "->",
)
