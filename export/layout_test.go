package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/LGhoull/priemer-aufgabe-1/deck"
)

func TestTableCellStyle_HeaderDistinguished(t *testing.T) {
	header := tableCellStyle(0)
	assert.True(t, header.Header)
	assert.True(t, header.Bold)
	assert.Equal(t, "FF4472C4", header.Fill)
	assert.Equal(t, "FFFFFFFF", header.Color)

	data := tableCellStyle(1)
	assert.False(t, data.Header)
	assert.False(t, data.Bold)
	assert.Empty(t, data.Fill)
}

// Every row after the header is drawn plain: not bold and not filled.
func TestProperty_DataRowsArePlain(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		row := rapid.IntRange(1, 10000).Draw(t, "row")
		st := tableCellStyle(row)
		if st.Bold || st.Fill != "" || st.Header {
			t.Fatalf("row %d styled as header: %+v", row, st)
		}
	})
}

func TestBulletMarker(t *testing.T) {
	assert.Equal(t, "•", bulletGlyph(0))
	assert.Equal(t, "–", bulletGlyph(1))
	assert.Equal(t, "◦", bulletGlyph(2))

	assert.Equal(t, "• ", bulletMarker(0))
	assert.True(t, strings.HasSuffix(bulletMarker(1), "– "))
	assert.True(t, strings.HasSuffix(bulletMarker(2), "◦ "))
	assert.Greater(t, len(bulletMarker(2)), len(bulletMarker(1)))
}

func TestTableRowHeight(t *testing.T) {
	assert.Equal(t, tableRowInch, tableRowHeight(3))
	assert.Equal(t, tableRowInch, tableRowHeight(0))
	assert.InDelta(t, tableMaxInch/10, tableRowHeight(10), 1e-9)
}

func TestTableFitsAboveFooter(t *testing.T) {
	assert.LessOrEqual(t, tableTop+tableMaxInch, footerTop)
	for _, s := range deck.FraudDetection().Tables() {
		rows := len(s.Table.Rows)
		assert.Equal(t, tableRowInch, tableRowHeight(rows), s.Title)
	}
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "+ ok x no ! warn * top -> next", transliterate.Replace("✓ ok ❌ no ⚠ warn ⭐ top → next"))
	assert.Equal(t, "Gütekriterien", transliterate.Replace("Gütekriterien"))
}

func TestGridSpans(t *testing.T) {
	comparison := deck.FraudDetection().Tables()[1].Table
	assert.Equal(t, []int{3, 2, 2, 2, 1, 2}, gridSpans(comparison, 12))

	even := &deck.Table{Rows: [][]string{{"a", "b", "c"}, {"1", "2", "3"}}}
	assert.Equal(t, []int{4, 4, 4}, gridSpans(even, 12))
}

func TestProperty_GridSpansFillGrid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := rapid.IntRange(1, 12).Draw(t, "cols")
		widths := rapid.SliceOfN(rapid.Float64Range(0.2, 4), cols, cols).Draw(t, "widths")
		header := make([]string, cols)
		tbl := &deck.Table{Rows: [][]string{header, header}, ColumnWidths: widths}

		spans := gridSpans(tbl, 12)
		total := 0
		for _, s := range spans {
			if s < 1 {
				t.Fatalf("span below one: %v", spans)
			}
			total += s
		}
		if total != 12 {
			t.Fatalf("spans %v sum to %d", spans, total)
		}
	})
}
