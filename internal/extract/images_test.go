package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/document-processor/internal/domain"
)

func newTestService() *Service {
	return NewService(nil, domain.NopLogger())
}

func TestSaveImages_SequencePrefixedNames(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService()

	images := []domain.EmbeddedImage{
		{Name: "img1.png", Data: []byte("first")},
		{Name: "img2.png", Data: []byte("second")},
	}

	paths, err := svc.SaveImages(images, dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(dir, "0_img1.png"), paths[0])
	assert.Equal(t, filepath.Join(dir, "1_img2.png"), paths[1])

	first, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), first)

	second, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), second)
}

func TestSaveImages_NoImages(t *testing.T) {
	svc := newTestService()

	paths, err := svc.SaveImages(nil, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSaveImages_FailedWriteKeepsEarlierFiles(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService()

	// A directory squatting on the second target path forces the
	// write to fail regardless of process privileges.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "1_img2.png"), 0o755))

	images := []domain.EmbeddedImage{
		{Name: "img1.png", Data: []byte("first")},
		{Name: "img2.png", Data: []byte("second")},
	}

	paths, err := svc.SaveImages(images, dir)
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeImageExtraction))
	assert.NotNil(t, errors.Unwrap(err), "image extraction error should wrap the I/O cause")

	// No rollback: the first image stays on disk.
	assert.FileExists(t, filepath.Join(dir, "0_img1.png"))
	assert.Equal(t, []string{filepath.Join(dir, "0_img1.png")}, paths)
}

func TestSaveImages_MissingDirectory(t *testing.T) {
	svc := newTestService()

	images := []domain.EmbeddedImage{{Name: "img1.png", Data: []byte("first")}}

	_, err := svc.SaveImages(images, filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeImageExtraction))
}
