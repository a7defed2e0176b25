package escp

import (
	"strings"
	"testing"
)

func TestNewPageBuilder_InitializedEmpty(t *testing.T) {
	b := NewPageBuilder()
	page := b.Build()

	for _, pos := range []Point{{0, 0}, {159, 0}, {0, 50}, {159, 50}, {80, 25}} {
		c, ok := page.CellAt(pos.X, pos.Y)
		if !ok {
			t.Fatalf("CellAt(%d, %d) not ok", pos.X, pos.Y)
		}
		if c != EmptyCell {
			t.Errorf("CellAt(%d, %d) = %+v, want EmptyCell", pos.X, pos.Y, c)
		}
	}
}

func TestPageBuilder_WriteAt(t *testing.T) {
	page := NewPageBuilder().WriteAt(10, 5, 'A', StyleBold).Build()

	c, ok := page.CellAt(10, 5)
	if !ok {
		t.Fatal("CellAt(10, 5) not ok")
	}
	if c.Char() != 'A' || c.Style() != StyleBold {
		t.Errorf("cell = %q/%v, want 'A'/bold", c.Char(), c.Style())
	}
}

func TestPageBuilder_WriteAt_SilentTruncation(t *testing.T) {
	// Out-of-bounds writes have no effect and must not panic.
	page := NewPageBuilder().
		WriteAt(200, 0, 'X', StyleNone).
		WriteAt(0, 100, 'Y', StyleNone).
		WriteAt(-1, 0, 'Z', StyleNone).
		WriteAt(0, -1, 'W', StyleNone).
		Build()

	c, _ := page.CellAt(0, 0)
	if c != EmptyCell {
		t.Errorf("CellAt(0, 0) = %+v, want EmptyCell", c)
	}
}

func TestPageBuilder_WriteString(t *testing.T) {
	page := NewPageBuilder().WriteString(0, 0, "Hello", StyleNone).Build()

	for i, want := range []byte("Hello") {
		c, _ := page.CellAt(i, 0)
		if c.Char() != want {
			t.Errorf("CellAt(%d, 0).Char() = %q, want %q", i, c.Char(), want)
		}
	}
}

func TestPageBuilder_WriteString_TruncatesAtEdge(t *testing.T) {
	long := strings.Repeat("A", 200)
	page := NewPageBuilder().WriteString(0, 0, long, StyleNone).Build()

	c, _ := page.CellAt(159, 0)
	if c.Char() != 'A' {
		t.Errorf("CellAt(159, 0).Char() = %q, want 'A'", c.Char())
	}
	// Nothing wrapped to the next row.
	c, _ = page.CellAt(0, 1)
	if c != EmptyCell {
		t.Errorf("CellAt(0, 1) = %+v, want EmptyCell", c)
	}
}

func TestPageBuilder_FillRegion(t *testing.T) {
	region, err := NewRegion(0, 0, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	page := NewPageBuilder().FillRegion(region, '-', StyleNone).Build()

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			c, _ := page.CellAt(x, y)
			if c.Char() != '-' {
				t.Errorf("CellAt(%d, %d).Char() = %q, want '-'", x, y, c.Char())
			}
		}
	}

	// Outside the region stays empty.
	if c, _ := page.CellAt(5, 0); c != EmptyCell {
		t.Errorf("CellAt(5, 0) = %+v, want EmptyCell", c)
	}
	if c, _ := page.CellAt(0, 3); c != EmptyCell {
		t.Errorf("CellAt(0, 3) = %+v, want EmptyCell", c)
	}
}

func TestPage_CellAt_OutOfBounds(t *testing.T) {
	page := NewPageBuilder().Build()

	for _, pos := range []Point{{200, 0}, {0, 100}, {-1, 0}, {0, -1}, {160, 0}, {0, 51}} {
		if _, ok := page.CellAt(pos.X, pos.Y); ok {
			t.Errorf("CellAt(%d, %d) ok = true, want false", pos.X, pos.Y)
		}
	}
}

func TestPageBuilder_BuildIsolation(t *testing.T) {
	b := NewPageBuilder()
	b.WriteString(0, 0, "frozen", StyleNone)
	page := b.Build()

	// Writes after Build must not leak into the frozen page.
	b.WriteAt(0, 0, 'X', StyleNone)

	c, _ := page.CellAt(0, 0)
	if c.Char() != 'f' {
		t.Errorf("frozen page mutated: CellAt(0, 0).Char() = %q, want 'f'", c.Char())
	}
}
