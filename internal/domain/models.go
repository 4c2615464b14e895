package domain

// DocumentMetadata is the flat metadata record of a PDF document.
// String fields mirror the document's Info dictionary; a missing Info
// entry leaves the field empty rather than failing the extraction.
// Page is set (1-based) only on per-page results.
type DocumentMetadata struct {
	PageCount int    `json:"page_count"`
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Producer  string `json:"producer,omitempty"`
	Creator   string `json:"creator,omitempty"`
	Page      int    `json:"page,omitempty"`
}

// MetadataResult is the outcome of a metadata extraction attempt.
// Available is false when the document could not be decoded; the
// diagnostic goes to the service logger and Metadata must not be used.
type MetadataResult struct {
	Available bool
	Metadata  DocumentMetadata
}

// PageResult is the outcome of a single-page extraction attempt.
// Available is false when the document or the requested page could not
// be read; ImagePaths preserve the order images were written in.
type PageResult struct {
	Available  bool
	Text       string
	ImagePaths []string
	Metadata   DocumentMetadata
}

// EmbeddedImage is binary image data stored inside a page's content
// stream. Name is the image's original resource name, extension
// included.
type EmbeddedImage struct {
	Name string
	Data []byte
}
