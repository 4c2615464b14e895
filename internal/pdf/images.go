package pdf

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/docpipe/document-processor/internal/domain"
)

// pageImages enumerates the images embedded in one page (1-based) via
// the pdfcpu cross-reference walk. Images are returned in document
// order, keyed by ascending object number, each named after its
// resource name with the detected file type as extension.
func pageImages(path string, pageNr int) ([]domain.EmbeddedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.IOError(fmt.Sprintf("cannot open document: %s", path), err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pages := []string{strconv.Itoa(pageNr)}

	extracted, err := api.ExtractImagesRaw(f, pages, conf)
	if err != nil {
		return nil, domain.DecodeError(fmt.Sprintf("failed to extract images from page %d", pageNr), err)
	}

	var images []domain.EmbeddedImage
	for _, pageMap := range extracted {
		objNrs := make([]int, 0, len(pageMap))
		for objNr := range pageMap {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := pageMap[objNr]
			data, err := io.ReadAll(img)
			if err != nil {
				return nil, domain.DecodeError(fmt.Sprintf("failed to read image object %d on page %d", objNr, pageNr), err)
			}
			images = append(images, domain.EmbeddedImage{
				Name: imageFileName(img.Name, img.FileType),
				Data: data,
			})
		}
	}

	return images, nil
}

// imageFileName joins a resource name with its detected file type.
// Some streams come back without a detected type; those keep the bare
// resource name instead of growing a trailing dot.
func imageFileName(name, fileType string) string {
	if fileType == "" {
		return name
	}
	return fmt.Sprintf("%s.%s", name, fileType)
}
