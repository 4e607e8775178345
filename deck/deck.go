// Package deck holds the slide content model. It knows nothing about file
// formats; renderers in the export package turn a Deck into bytes.
package deck

import (
	"errors"
	"fmt"
)

// Kind identifies the layout a slide is drawn with
type Kind int

const (
	KindTitle Kind = iota
	KindContent
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindContent:
		return "content"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MaxBulletLevel is the deepest indent level a bullet may use.
const MaxBulletLevel = 2

var (
	ErrEmptyDeck      = errors.New("deck has no slides")
	ErrEmptyTitle     = errors.New("slide title is empty")
	ErrBulletLevel    = errors.New("bullet level out of range")
	ErrTableNoData    = errors.New("table needs a header and at least one data row")
	ErrRaggedTable    = errors.New("table rows differ in length")
	ErrColumnWidths   = errors.New("column widths do not match column count")
	ErrNonPositiveCol = errors.New("column width must be positive")
)

// Bullet is one paragraph of a content slide.
type Bullet struct {
	Level int
	Text  string
}

// B is shorthand for building bullet literals.
func B(level int, text string) Bullet {
	return Bullet{Level: level, Text: text}
}

// Table is a fixed grid of strings. Row 0 is the header.
type Table struct {
	Rows [][]string
	// ColumnWidths in inches; nil splits the table width evenly.
	ColumnWidths []float64
}

// Header returns row 0.
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Data returns every row after the header.
func (t *Table) Data() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// Columns returns the column count taken from the header row.
func (t *Table) Columns() int {
	return len(t.Header())
}

// Slide is a single page of the deck. Only the fields matching Kind are set.
type Slide struct {
	Kind     Kind
	Title    string
	Subtitle string
	Bullets  []Bullet
	Table    *Table
}

// Deck is an ordered list of slides plus document metadata.
type Deck struct {
	Title  string
	Author string
	Slides []Slide
}

// New creates an empty deck.
func New(title, author string) *Deck {
	return &Deck{Title: title, Author: author}
}

// AddTitleSlide appends a title slide.
func (d *Deck) AddTitleSlide(title, subtitle string) *Deck {
	d.Slides = append(d.Slides, Slide{Kind: KindTitle, Title: title, Subtitle: subtitle})
	return d
}

// AddContentSlide appends a bulleted slide.
func (d *Deck) AddContentSlide(title string, bullets ...Bullet) *Deck {
	d.Slides = append(d.Slides, Slide{Kind: KindContent, Title: title, Bullets: bullets})
	return d
}

// AddTableSlide appends a table slide. rows[0] is the header row.
func (d *Deck) AddTableSlide(title string, rows [][]string, widths ...float64) *Deck {
	d.Slides = append(d.Slides, Slide{
		Kind:  KindTable,
		Title: title,
		Table: &Table{Rows: rows, ColumnWidths: widths},
	})
	return d
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Tables returns the table slides in deck order.
func (d *Deck) Tables() []Slide {
	var out []Slide
	for _, s := range d.Slides {
		if s.Kind == KindTable && s.Table != nil {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks the structural rules every renderer relies on.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return ErrEmptyDeck
	}
	for i, s := range d.Slides {
		if err := s.validate(); err != nil {
			return fmt.Errorf("slide %d (%s): %w", i+1, s.Kind, err)
		}
	}
	return nil
}

func (s Slide) validate() error {
	if s.Title == "" {
		return ErrEmptyTitle
	}
	switch s.Kind {
	case KindContent:
		for _, b := range s.Bullets {
			if b.Level < 0 || b.Level > MaxBulletLevel {
				return fmt.Errorf("%w: %d", ErrBulletLevel, b.Level)
			}
		}
	case KindTable:
		if s.Table == nil {
			return ErrTableNoData
		}
		return s.Table.validate()
	}
	return nil
}

func (t *Table) validate() error {
	if len(t.Rows) < 2 || len(t.Rows[0]) == 0 {
		return ErrTableNoData
	}
	cols := len(t.Rows[0])
	for i, row := range t.Rows {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRaggedTable, i, len(row), cols)
		}
	}
	if len(t.ColumnWidths) == 0 {
		return nil
	}
	if len(t.ColumnWidths) != cols {
		return fmt.Errorf("%w: %d widths for %d columns", ErrColumnWidths, len(t.ColumnWidths), cols)
	}
	for _, w := range t.ColumnWidths {
		if w <= 0 {
			return ErrNonPositiveCol
		}
	}
	return nil
}

// Widths returns the column widths in inches, scaled so they sum to total.
// Without explicit widths the columns share total evenly.
func (t *Table) Widths(total float64) []float64 {
	cols := t.Columns()
	out := make([]float64, cols)
	if cols == 0 {
		return out
	}
	if len(t.ColumnWidths) != cols {
		for i := range out {
			out[i] = total / float64(cols)
		}
		return out
	}
	sum := 0.0
	for _, w := range t.ColumnWidths {
		sum += w
	}
	for i, w := range t.ColumnWidths {
		out[i] = w / sum * total
	}
	return out
}
