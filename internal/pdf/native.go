package pdf

import (
	"fmt"
	"os"
	"unicode/utf16"

	"github.com/ledongthuc/pdf"

	"github.com/docpipe/document-processor/internal/domain"
)

// NativeOpener opens documents through the pure-Go text-layer parser
// (ledongthuc/pdf). It needs no CGO but only reads the embedded text
// layer; scanned PDFs come back empty.
type NativeOpener struct{}

// Open decodes the PDF at path.
func (NativeOpener) Open(path string) (domain.Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, domain.DecodeError(fmt.Sprintf("failed to open PDF: %s", path), err)
	}
	return &nativeDocument{file: f, reader: r, path: path, fonts: make(map[string]*pdf.Font)}, nil
}

type nativeDocument struct {
	file   *os.File
	reader *pdf.Reader
	path   string
	fonts  map[string]*pdf.Font
}

func (d *nativeDocument) PageCount() int {
	return d.reader.NumPage()
}

func (d *nativeDocument) Metadata() domain.DocumentMetadata {
	meta := domain.DocumentMetadata{PageCount: d.reader.NumPage()}

	info := d.reader.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}

	meta.Title = infoText(info.Key("Title"))
	meta.Author = infoText(info.Key("Author"))
	meta.Subject = infoText(info.Key("Subject"))
	meta.Producer = infoText(info.Key("Producer"))
	meta.Creator = infoText(info.Key("Creator"))
	return meta
}

func (d *nativeDocument) PageText(pageIndex int) (string, error) {
	page := d.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return "", domain.DecodeError(fmt.Sprintf("missing page object at index %d", pageIndex), nil)
	}

	for _, name := range page.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := page.Font(name)
			d.fonts[name] = &font
		}
	}

	text, err := page.GetPlainText(d.fonts)
	if err != nil {
		return "", domain.DecodeError(fmt.Sprintf("failed to extract text from page index %d", pageIndex), err)
	}
	return text, nil
}

func (d *nativeDocument) PageImages(pageIndex int) ([]domain.EmbeddedImage, error) {
	return pageImages(d.path, pageIndex+1)
}

func (d *nativeDocument) Close() error {
	return d.file.Close()
}

// infoText decodes a PDF text string from the Info dictionary. Text
// strings are either PDFDocEncoding or UTF-16BE with a byte order
// mark.
func infoText(v pdf.Value) string {
	if v.IsNull() || v.Kind() != pdf.String {
		return ""
	}
	raw := v.RawString()
	if len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF {
		units := make([]uint16, 0, (len(raw)-2)/2)
		for i := 2; i+1 < len(raw); i += 2 {
			units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
		}
		return string(utf16.Decode(units))
	}
	return raw
}
