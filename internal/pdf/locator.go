package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docpipe/document-processor/internal/domain"
)

// Locate normalizes a document path and verifies it references an
// existing regular file. It is a pure existence check: the file is not
// validated as a PDF and no lock is held, so the entry may disappear
// after Locate returns.
func Locate(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", domain.InvalidArgumentError("document path cannot be empty", nil)
	}

	cleaned := filepath.Clean(path)

	info, err := os.Stat(cleaned)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.NotFoundError(fmt.Sprintf("document not found: %s", cleaned), err)
		}
		return "", domain.IOError(fmt.Sprintf("cannot access document: %s", cleaned), err)
	}

	if info.IsDir() {
		return "", domain.InvalidArgumentError(fmt.Sprintf("path is a directory, not a document: %s", cleaned), nil)
	}

	return cleaned, nil
}
