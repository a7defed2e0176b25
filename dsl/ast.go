// Package dsl parses a compact document markup into renderable
// documents. A file declares pages, each page a vertical sequence of
// rows, columns, labels, and spacing:
//
//	doc {
//	  page {
//	    row 160 8 { label 40 "ACME Corp" bold; label 30 "INVOICE" underline }
//	    space 2
//	    column 160 41 { label 60 "Thank you for your business" }
//	  }
//	}
//
// Parsed documents are built through the layout engine's widget tree,
// so every composition invariant (fit, overlap, text width) applies to
// markup exactly as it does to hand-built trees, and violations are
// reported with source positions.
package dsl

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[{};]`},
	})

	fileParser = participle.MustBuild[fileNode](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

type fileNode struct {
	Pos   lexer.Position
	Pages []*pageNode `parser:"'doc' '{' @@* '}'"`
}

type pageNode struct {
	Pos   lexer.Position
	Items []*itemNode `parser:"'page' '{' ( @@ ';'* )* '}'"`
}

type itemNode struct {
	Group *groupNode `parser:"  @@"`
	Label *labelNode `parser:"| @@"`
	Space *spaceNode `parser:"| @@"`
}

type groupNode struct {
	Pos    lexer.Position
	Kind   string      `parser:"@('row' | 'column')"`
	Width  int         `parser:"@Int"`
	Height int         `parser:"@Int"`
	Items  []*itemNode `parser:"'{' ( @@ ';'* )* '}'"`
}

type labelNode struct {
	Pos    lexer.Position
	Width  int           `parser:"'label' @Int"`
	Text   stringLiteral `parser:"@String"`
	Styles []string      `parser:"@('bold' | 'underline')*"`
}

type spaceNode struct {
	Pos  lexer.Position
	Size int `parser:"'space' @Int"`
}

// stringLiteral unquotes Go-style string tokens on capture.
type stringLiteral string

// Capture implements participle.Capture.
func (s *stringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires a value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = stringLiteral(val)
	return nil
}
