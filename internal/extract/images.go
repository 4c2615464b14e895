package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docpipe/document-processor/internal/domain"
)

// SaveImages writes the images of a single page into dir, naming each
// file "{sequence}_{original name}" with a zero-based sequence to keep
// names collision-free within one extraction call. Returned paths
// preserve extraction order.
//
// dir must already exist and be writable. The first failed write stops
// the call with an image extraction error wrapping the cause; files
// written earlier in the same call stay on disk.
func (s *Service) SaveImages(images []domain.EmbeddedImage, dir string) ([]string, error) {
	paths := make([]string, 0, len(images))

	for i, img := range images {
		path := filepath.Join(dir, fmt.Sprintf("%d_%s", i, img.Name))
		if err := os.WriteFile(path, img.Data, 0o644); err != nil {
			return paths, domain.ImageExtractionError(fmt.Sprintf("failed to write image %s", path), err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
