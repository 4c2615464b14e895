// Package processor is the public entry point for extracting text,
// embedded images, and metadata from PDF documents.
package processor

import (
	"io"
	"os"

	"github.com/docpipe/document-processor/internal/config"
	"github.com/docpipe/document-processor/internal/domain"
	"github.com/docpipe/document-processor/internal/extract"
	"github.com/docpipe/document-processor/internal/pdf"
)

// Re-export result types for the public API
type (
	DocumentMetadata = domain.DocumentMetadata
	MetadataResult   = domain.MetadataResult
	PageResult       = domain.PageResult
	EmbeddedImage    = domain.EmbeddedImage
	Document         = domain.Document
)

// Engine name constants
const (
	EngineFitz   = config.EngineFitz
	EngineNative = config.EngineNative
)

// Config holds configuration options for the client.
type Config struct {
	Engine    string    // decode engine: EngineFitz (default) or EngineNative
	ImagesDir string    // target directory for extracted images, default ./images
	LogLevel  string    // zerolog level name, default info
	LogFormat string    // json or console, default console
	LogOutput io.Writer // defaults to stderr
}

// Client is the main entry point for the document processor library.
type Client struct {
	service   *extract.Service
	imagesDir string
	logger    *domain.Logger
}

// NewClient creates a new processor client. A nil cfg uses defaults.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	engine := cfg.Engine
	if engine == "" {
		engine = EngineFitz
	}

	var opener domain.Opener
	switch engine {
	case EngineFitz:
		opener = pdf.FitzOpener{}
	case EngineNative:
		opener = pdf.NativeOpener{}
	default:
		return nil, domain.ConfigError("unknown decode engine: "+engine, nil)
	}

	imagesDir := cfg.ImagesDir
	if imagesDir == "" {
		imagesDir = config.DefaultConfig().ImagesDir
	}

	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := cfg.LogFormat
	if logFormat == "" {
		logFormat = "console"
	}
	logger := domain.NewLogger(domain.LogConfig{
		Level:  logLevel,
		Format: logFormat,
		Output: cfg.LogOutput,
	})

	return &Client{
		service:   extract.NewService(opener, logger),
		imagesDir: imagesDir,
		logger:    logger,
	}, nil
}

// Metadata extracts the document-level metadata record. NotFound is a
// hard error; an undecodable document yields Available == false.
func (c *Client) Metadata(path string) (MetadataResult, error) {
	return c.service.MetadataFromPath(path)
}

// ExtractPage extracts text and embedded images from the 1-based page
// number, writing images under the configured images directory.
func (c *Client) ExtractPage(path string, pageNumber int) (PageResult, error) {
	if err := c.ensureImagesDir(); err != nil {
		return PageResult{}, err
	}
	return c.service.PageFromPath(path, pageNumber, c.imagesDir)
}

// ExtractAll runs ExtractPage over every page of the document. A nil
// slice with a nil error means the document itself was unavailable.
// Unavailable pages are kept in the result slice with Available set to
// false so callers see which pages were skipped; the loop never stops
// on a bad page. Observers, if any, receive each page result as it is
// produced.
func (c *Client) ExtractAll(path string, observers ...func(PageResult)) ([]PageResult, error) {
	if err := c.ensureImagesDir(); err != nil {
		return nil, err
	}

	doc, ok, err := c.service.Read(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	defer doc.Close()

	results := make([]PageResult, 0, doc.PageCount())
	for pageNumber := 1; pageNumber <= doc.PageCount(); pageNumber++ {
		result, err := c.service.Page(doc, pageNumber, c.imagesDir)
		if err != nil {
			return results, err
		}
		results = append(results, result)
		for _, observe := range observers {
			observe(result)
		}
	}
	return results, nil
}

// ensureImagesDir creates the images directory if missing. The
// low-level writer assumes the directory exists; creating it here
// keeps that contract while sparing callers the mkdir.
func (c *Client) ensureImagesDir() error {
	if err := os.MkdirAll(c.imagesDir, 0o755); err != nil {
		return domain.IOError("cannot create images directory: "+c.imagesDir, err)
	}
	return nil
}
