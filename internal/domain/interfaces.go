package domain

// Document is an open, page-addressable representation of a decoded
// PDF. Page indices are 0-based; callers own the handle and must Close
// it when done.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Metadata reads the document-level metadata record. Fields the
	// document does not carry are left empty.
	Metadata() DocumentMetadata

	// PageText extracts the plain text of the page at pageIndex.
	PageText(pageIndex int) (string, error)

	// PageImages lists the images embedded in the page at pageIndex,
	// in document order.
	PageImages(pageIndex int) ([]EmbeddedImage, error)

	// Close releases the underlying decode resources.
	Close() error
}

// Opener resolves a validated path into an open Document.
type Opener interface {
	Open(path string) (Document, error)
}
