package escp

// Document is an ordered, immutable sequence of Pages ready for
// serialization.
type Document struct {
	pages []Page
}

// Pages returns the document's pages in order. The slice is owned by the
// document; callers must not modify it.
func (d Document) Pages() []Page {
	return d.pages
}

// PageCount returns the number of pages.
func (d Document) PageCount() int {
	return len(d.pages)
}

// Render serializes the document to its ESC/P byte stream. It is pure and
// total: it never fails, and the same document always produces the same
// bytes. An empty document still yields the initialization sequence.
func (d Document) Render() []byte {
	return renderDocument(d)
}

// DocumentBuilder accumulates pages; Build freezes them into a Document.
type DocumentBuilder struct {
	pages []Page
}

// NewDocumentBuilder creates an empty builder.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// AddPage appends a page. Pages are serialized in the order added.
func (b *DocumentBuilder) AddPage(p Page) *DocumentBuilder {
	b.pages = append(b.pages, p)
	return b
}

// Build freezes the builder into an immutable Document.
func (b *DocumentBuilder) Build() Document {
	pages := make([]Page, len(b.pages))
	copy(pages, b.pages)
	return Document{pages: pages}
}
