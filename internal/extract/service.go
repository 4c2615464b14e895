// Package extract chains document location, decoding, and per-page
// extraction, translating decode failures into explicit unavailable
// results instead of errors.
package extract

import (
	"github.com/docpipe/document-processor/internal/domain"
	"github.com/docpipe/document-processor/internal/pdf"
)

// Service performs metadata and page extraction against an injected
// decode engine. It holds no per-document state; every call opens and
// releases its own handle.
type Service struct {
	opener domain.Opener
	logger *domain.Logger
}

// NewService creates a new extraction service.
func NewService(opener domain.Opener, logger *domain.Logger) *Service {
	if logger == nil {
		logger = domain.DefaultLogger()
	}
	return &Service{
		opener: opener,
		logger: logger.WithComponent("extract"),
	}
}

// Read locates and opens a document. A missing file is a hard NotFound
// error; a decode failure is the soft path: the diagnostic is logged
// and ok is false. Callers own the returned handle.
func (s *Service) Read(path string) (doc domain.Document, ok bool, err error) {
	located, err := pdf.Locate(path)
	if err != nil {
		return nil, false, err
	}

	doc, openErr := s.opener.Open(located)
	if openErr != nil {
		s.logger.Warn().Err(openErr).Str("path", located).Msg("document unavailable")
		return nil, false, nil
	}
	return doc, true, nil
}

// Metadata reads the document-level metadata record from an open
// handle. Read-only; fields the document does not carry stay empty.
// A nil handle is the unavailable document and yields an unavailable
// result.
func (s *Service) Metadata(doc domain.Document) domain.MetadataResult {
	if doc == nil {
		s.logger.Warn().Msg("no document handle, metadata unavailable")
		return domain.MetadataResult{}
	}
	return domain.MetadataResult{
		Available: true,
		Metadata:  doc.Metadata(),
	}
}

// MetadataFromPath locates, opens, and reads metadata in one call.
// NotFound propagates; decode failures yield an unavailable result.
func (s *Service) MetadataFromPath(path string) (domain.MetadataResult, error) {
	doc, ok, err := s.Read(path)
	if err != nil {
		return domain.MetadataResult{}, err
	}
	if !ok {
		return domain.MetadataResult{}, nil
	}
	defer doc.Close()

	return s.Metadata(doc), nil
}

// Page extracts text and embedded images from the 1-based pageNumber,
// writing images into imagesDir. A page number below 1 violates the
// contract and errors immediately; everything that goes wrong during
// the extraction itself is logged and softened to an unavailable
// result so a caller can keep iterating the remaining pages.
func (s *Service) Page(doc domain.Document, pageNumber int, imagesDir string) (domain.PageResult, error) {
	if pageNumber < 1 {
		return domain.PageResult{}, domain.InvalidArgumentError("page number must be greater than 0", nil)
	}
	if doc == nil {
		s.logger.Warn().Int("page", pageNumber).Msg("no document handle, page unavailable")
		return domain.PageResult{}, nil
	}
	pageIndex := pageNumber - 1

	if pageIndex >= doc.PageCount() {
		rangeErr := domain.PageRangeError("page number exceeds document length", nil)
		s.logger.Warn().Err(rangeErr).
			Int("page", pageNumber).
			Int("page_count", doc.PageCount()).
			Msg("page unavailable")
		return domain.PageResult{}, nil
	}

	metadata := doc.Metadata()
	metadata.Page = pageNumber

	text, err := doc.PageText(pageIndex)
	if err != nil {
		s.logger.Warn().Err(err).Int("page", pageNumber).Msg("text extraction failed")
		return domain.PageResult{}, nil
	}

	images, err := doc.PageImages(pageIndex)
	if err != nil {
		s.logger.Warn().Err(err).Int("page", pageNumber).Msg("image listing failed")
		return domain.PageResult{}, nil
	}

	paths, err := s.SaveImages(images, imagesDir)
	if err != nil {
		s.logger.Warn().Err(err).Int("page", pageNumber).Msg("image extraction failed")
		return domain.PageResult{}, nil
	}

	return domain.PageResult{
		Available:  true,
		Text:       text,
		ImagePaths: paths,
		Metadata:   metadata,
	}, nil
}

// PageFromPath is Page for callers holding only a path. NotFound and
// InvalidArgument propagate; an undecodable document yields an
// unavailable result.
func (s *Service) PageFromPath(path string, pageNumber int, imagesDir string) (domain.PageResult, error) {
	if pageNumber < 1 {
		return domain.PageResult{}, domain.InvalidArgumentError("page number must be greater than 0", nil)
	}

	doc, ok, err := s.Read(path)
	if err != nil {
		return domain.PageResult{}, err
	}
	if !ok {
		return domain.PageResult{}, nil
	}
	defer doc.Close()

	return s.Page(doc, pageNumber, imagesDir)
}
