package pdf

import (
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/docpipe/document-processor/internal/domain"
)

// FitzOpener opens documents through MuPDF (go-fitz). It is the
// default engine: fast and tolerant, but requires CGO.
type FitzOpener struct{}

// Open decodes the PDF at path.
func (FitzOpener) Open(path string) (domain.Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, domain.DecodeError(fmt.Sprintf("failed to open PDF: %s", path), err)
	}
	return &fitzDocument{doc: doc, path: path}, nil
}

type fitzDocument struct {
	doc  *fitz.Document
	path string
}

func (d *fitzDocument) PageCount() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) Metadata() domain.DocumentMetadata {
	meta := d.doc.Metadata()
	return domain.DocumentMetadata{
		PageCount: d.doc.NumPage(),
		Title:     meta["title"],
		Author:    meta["author"],
		Subject:   meta["subject"],
		Producer:  meta["producer"],
		Creator:   meta["creator"],
	}
}

func (d *fitzDocument) PageText(pageIndex int) (string, error) {
	text, err := d.doc.Text(pageIndex)
	if err != nil {
		return "", domain.DecodeError(fmt.Sprintf("failed to extract text from page index %d", pageIndex), err)
	}
	return text, nil
}

func (d *fitzDocument) PageImages(pageIndex int) ([]domain.EmbeddedImage, error) {
	// MuPDF renders pages but does not enumerate embedded resources;
	// image streams come from the pdfcpu cross-reference walk instead.
	return pageImages(d.path, pageIndex+1)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
