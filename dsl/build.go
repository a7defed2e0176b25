package dsl

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	escp "github.com/leaderiop/escp-layout"
)

// Parse parses markup and builds the document it describes. Syntax
// errors come from the parser with positions attached; composition
// errors (a child that does not fit, overlapping children, oversized
// label text) are the layout engine's typed errors wrapped with the
// position of the offending node.
func Parse(src string) (escp.Document, error) {
	file, err := fileParser.ParseString("", src)
	if err != nil {
		return escp.Document{}, err
	}
	return build(file)
}

// ParseReader is Parse over an io.Reader.
func ParseReader(name string, r io.Reader) (escp.Document, error) {
	file, err := fileParser.Parse(name, r)
	if err != nil {
		return escp.Document{}, err
	}
	return build(file)
}

func build(file *fileNode) (escp.Document, error) {
	db := escp.NewDocumentBuilder()
	for _, page := range file.Pages {
		p, err := buildPage(page)
		if err != nil {
			return escp.Document{}, err
		}
		db.AddPage(p)
	}
	return db.Build(), nil
}

// buildPage composes one page: items flow top to bottom over the full
// 160x51 area, exactly like a column group.
func buildPage(page *pageNode) (escp.Page, error) {
	root, err := buildColumn(page.Pos, escp.PageWidth, escp.PageHeight, page.Items)
	if err != nil {
		return escp.Page{}, err
	}

	pb := escp.NewPageBuilder()
	if err := pb.Render(root); err != nil {
		return escp.Page{}, errors.Wrapf(err, "%s: render page", page.Pos)
	}
	return pb.Build(), nil
}

func buildItem(item *itemNode) (escp.Widget, lexer.Position, error) {
	switch {
	case item.Group != nil:
		g := item.Group
		var w escp.Widget
		var err error
		if g.Kind == "row" {
			w, err = buildRow(g.Pos, g.Width, g.Height, g.Items)
		} else {
			w, err = buildColumn(g.Pos, g.Width, g.Height, g.Items)
		}
		return w, g.Pos, err
	case item.Label != nil:
		w, err := buildLabel(item.Label)
		return w, item.Label.Pos, err
	default:
		// Spaces are handled by the enclosing group's allocator.
		return nil, item.Space.Pos, nil
	}
}

// buildColumn stacks items vertically through a Column allocator, so
// exhausting the declared height fails the parse rather than clipping.
func buildColumn(pos lexer.Position, width, height int, items []*itemNode) (*escp.Container, error) {
	if err := checkGroupSize(pos, width, height); err != nil {
		return nil, err
	}

	parent := escp.NewContainer(width, height)
	col := escp.NewColumn(width, height)

	for _, item := range items {
		if item.Space != nil {
			if _, _, err := col.Area(item.Space.Size); err != nil {
				return nil, errors.Wrapf(err, "%s: space %d", item.Space.Pos, item.Space.Size)
			}
			continue
		}

		child, childPos, err := buildItem(item)
		if err != nil {
			return nil, err
		}
		area, at, err := col.Area(child.Height())
		if err != nil {
			return nil, errors.Wrapf(err, "%s: item does not fit in column", childPos)
		}
		if err := area.AddChild(child, escp.Point{}); err != nil {
			return nil, errors.Wrapf(err, "%s: item does not fit in column", childPos)
		}
		if err := parent.AddChild(area, at); err != nil {
			return nil, errors.Wrapf(err, "%s: item does not fit in column", childPos)
		}
	}
	return parent, nil
}

// buildRow lays items left to right through a Row allocator.
func buildRow(pos lexer.Position, width, height int, items []*itemNode) (*escp.Container, error) {
	if err := checkGroupSize(pos, width, height); err != nil {
		return nil, err
	}

	parent := escp.NewContainer(width, height)
	row := escp.NewRow(width, height)

	for _, item := range items {
		if item.Space != nil {
			if _, _, err := row.Area(item.Space.Size); err != nil {
				return nil, errors.Wrapf(err, "%s: space %d", item.Space.Pos, item.Space.Size)
			}
			continue
		}

		child, childPos, err := buildItem(item)
		if err != nil {
			return nil, err
		}
		area, at, err := row.Area(child.Width())
		if err != nil {
			return nil, errors.Wrapf(err, "%s: item does not fit in row", childPos)
		}
		if err := area.AddChild(child, escp.Point{}); err != nil {
			return nil, errors.Wrapf(err, "%s: item does not fit in row", childPos)
		}
		if err := parent.AddChild(area, at); err != nil {
			return nil, errors.Wrapf(err, "%s: item does not fit in row", childPos)
		}
	}
	return parent, nil
}

func buildLabel(node *labelNode) (*escp.Label, error) {
	if node.Width <= 0 {
		return nil, errors.Errorf("%s: label width must be positive, got %d", node.Pos, node.Width)
	}

	label, err := escp.NewLabel(node.Width).AddText(string(node.Text))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: label text", node.Pos)
	}
	for _, style := range node.Styles {
		if style == "bold" {
			label.Bold()
		} else {
			label.Underline()
		}
	}
	return label, nil
}

func checkGroupSize(pos lexer.Position, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("%s: group dimensions must be positive, got %d by %d", pos, width, height)
	}
	return nil
}
