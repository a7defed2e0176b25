// Package escp composes grids of styled text and serializes them into a
// deterministic ESC/P command stream for fixed-format dot-matrix printers
// (EPSON LQ-2090II, condensed mode, 160 columns by 51 rows per page).
//
// Users compose documents through the widget tree (Container, Label, and
// the Column/Row/Stack allocators), render into a Page, collect pages into
// a Document, and call Document.Render for the wire bytes. A smaller
// region-based widget layer (Text, Paragraph, Table, KeyValueList, Frame)
// writes directly into a PageBuilder for content that needs no structural
// validation.
package escp
