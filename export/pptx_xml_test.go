package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LGhoull/priemer-aufgabe-1/deck"
)

// The GoPPT reader drops paragraph levels, so these tests read the slide
// parts straight from the zip container.

type xmlPresentation struct {
	SldSz struct {
		CX   int64  `xml:"cx,attr"`
		CY   int64  `xml:"cy,attr"`
		Type string `xml:"type,attr"`
	} `xml:"sldSz"`
}

type xmlSlide struct {
	Shapes []xmlShape `xml:"cSld>spTree>sp"`
}

type xmlShape struct {
	Off struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"spPr>xfrm>off"`
	Ext struct {
		CX int64 `xml:"cx,attr"`
		CY int64 `xml:"cy,attr"`
	} `xml:"spPr>xfrm>ext"`
	Fill  *xmlColor      `xml:"spPr>solidFill>srgbClr"`
	Paras []xmlParagraph `xml:"txBody>p"`
}

type xmlColor struct {
	Val string `xml:"val,attr"`
}

type xmlParagraph struct {
	PPr struct {
		Lvl    int `xml:"lvl,attr"`
		BuChar *struct {
			Char string `xml:"char,attr"`
		} `xml:"buChar"`
	} `xml:"pPr"`
	Runs []struct {
		RPr struct {
			B string `xml:"b,attr"`
		} `xml:"rPr"`
		Text string `xml:"t"`
	} `xml:"r"`
}

func (p xmlParagraph) text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

func (s xmlShape) bold() bool {
	for _, p := range s.Paras {
		for _, r := range p.Runs {
			if r.RPr.B == "1" {
				return true
			}
		}
	}
	return false
}

func openPPTX(t *testing.T, d *deck.Deck) *zip.Reader {
	t.Helper()
	data, err := NewPPTRenderer().Render(d)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return zr
}

func readPart(t *testing.T, zr *zip.Reader, name string, v interface{}) {
	t.Helper()
	f, err := zr.Open(name)
	require.NoError(t, err, name)
	defer f.Close()
	raw, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, xml.Unmarshal(raw, v), name)
}

func readSlide(t *testing.T, zr *zip.Reader, n int) xmlSlide {
	t.Helper()
	var s xmlSlide
	readPart(t, zr, fmt.Sprintf("ppt/slides/slide%d.xml", n), &s)
	return s
}

func TestPPTX_PageSize(t *testing.T) {
	zr := openPPTX(t, deck.FraudDetection())

	var pres xmlPresentation
	readPart(t, zr, "ppt/presentation.xml", &pres)
	assert.Equal(t, emu(slideWidth), pres.SldSz.CX)
	assert.Equal(t, emu(slideHeight), pres.SldSz.CY)
	assert.Equal(t, "screen4x3", pres.SldSz.Type)
}

func TestPPTX_ShapesInsidePage(t *testing.T) {
	d := deck.FraudDetection()
	zr := openPPTX(t, d)

	for n := 1; n <= d.Len(); n++ {
		for _, sh := range readSlide(t, zr, n).Shapes {
			assert.LessOrEqual(t, sh.Off.X+sh.Ext.CX, emu(slideWidth)+1, "slide %d", n)
			assert.LessOrEqual(t, sh.Off.Y+sh.Ext.CY, emu(slideHeight)+1, "slide %d", n)
		}
	}

	// the title slide's accent bar closes the page
	var bottom int64
	for _, sh := range readSlide(t, zr, 1).Shapes {
		if end := sh.Off.Y + sh.Ext.CY; end > bottom {
			bottom = end
		}
	}
	assert.InDelta(t, emu(slideHeight), bottom, 2)
}

func TestPPTX_TableHeaderStyledDataPlain(t *testing.T) {
	d := deck.FraudDetection()
	zr := openPPTX(t, d)

	for n, s := range d.Slides {
		if s.Kind != deck.KindTable {
			continue
		}
		rows := len(s.Table.Rows)
		cols := s.Table.Columns()
		rowHeight := emu(tableRowHeight(rows))

		var cells []xmlShape
		for _, sh := range readSlide(t, zr, n+1).Shapes {
			if sh.Off.Y >= emu(tableTop) && sh.Off.Y < emu(footerTop) {
				cells = append(cells, sh)
			}
		}
		require.Len(t, cells, rows*cols, s.Title)

		for i, cell := range cells {
			row, col := i/cols, i%cols
			require.Len(t, cell.Paras, 1)
			assert.Equal(t, s.Table.Rows[row][col], cell.Paras[0].text())
			assert.InDelta(t, emu(tableTop)+int64(row)*rowHeight, cell.Off.Y, float64(rows))

			if row == 0 {
				require.NotNil(t, cell.Fill, "%s header cell %d", s.Title, col)
				assert.Equal(t, "4472C4", cell.Fill.Val)
				assert.True(t, cell.bold(), "%s header cell %d", s.Title, col)
				continue
			}
			assert.Nil(t, cell.Fill, "%s row %d cell %d", s.Title, row, col)
			assert.False(t, cell.bold(), "%s row %d cell %d", s.Title, row, col)
		}

		last := cells[len(cells)-1]
		assert.LessOrEqual(t, last.Off.Y+last.Ext.CY, emu(tableTop+tableMaxInch)+int64(rows))
	}
}

func TestPPTX_BulletTextAndLevels(t *testing.T) {
	d := deck.FraudDetection()
	zr := openPPTX(t, d)

	for n, s := range d.Slides {
		if s.Kind != deck.KindContent {
			continue
		}

		var paras []xmlParagraph
		for _, sh := range readSlide(t, zr, n+1).Shapes {
			for _, p := range sh.Paras {
				if p.PPr.BuChar != nil {
					paras = append(paras, p)
				}
			}
		}
		require.Len(t, paras, len(s.Bullets), s.Title)

		for i, b := range s.Bullets {
			assert.Equal(t, b.Text, paras[i].text(), "%s bullet %d", s.Title, i)
			assert.Equal(t, b.Level, paras[i].PPr.Lvl, "%s bullet %d", s.Title, i)
			assert.Equal(t, bulletGlyph(b.Level), paras[i].PPr.BuChar.Char, "%s bullet %d", s.Title, i)
		}
	}
}

func TestPPTX_FooterNumbersSlides(t *testing.T) {
	d := deck.FraudDetection()
	zr := openPPTX(t, d)

	for n := 2; n <= d.Len(); n++ {
		var found bool
		for _, sh := range readSlide(t, zr, n).Shapes {
			if sh.Off.Y == emu(footerTop) && len(sh.Paras) == 1 {
				assert.Equal(t, fmt.Sprintf("%d / %d", n, d.Len()), sh.Paras[0].text())
				found = true
			}
		}
		assert.True(t, found, "slide %d has no footer", n)
	}
}
