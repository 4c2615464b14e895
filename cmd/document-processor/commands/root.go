package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docpipe/document-processor/internal/config"
	"github.com/docpipe/document-processor/pkg/processor"
)

const version = "1.0.0"

var (
	cfgFile   string
	engine    string
	imagesDir string
	verbose   bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "document-processor",
	Short:   "Extract text, embedded images, and metadata from PDF documents",
	Version: version,
	Long: `document-processor reads a PDF page by page, extracting the text layer,
the embedded images, and the document metadata record. Extracted images
are written to a configurable directory; undecodable documents and
pages are reported and skipped rather than failing the run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load() // Ignore error if .env doesn't exist

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Flags win over file and environment.
		if engine != "" {
			cfg.Engine = engine
		}
		if imagesDir != "" {
			cfg.ImagesDir = imagesDir
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&engine, "engine", "", "decode engine: fitz or native")
	rootCmd.PersistentFlags().StringVar(&imagesDir, "images-dir", "", "directory for extracted images")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newClient() (*processor.Client, error) {
	return processor.NewClient(&processor.Config{
		Engine:    cfg.Engine,
		ImagesDir: cfg.ImagesDir,
		LogLevel:  cfg.Log.Level,
		LogFormat: cfg.Log.Format,
	})
}
