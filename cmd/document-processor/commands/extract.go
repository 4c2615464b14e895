package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/docpipe/document-processor/pkg/processor"
)

var (
	pageNumber int
	outputPath string
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf-file>",
	Short: "Extract page text and embedded images",
	Long: `Extract page text and embedded images from a PDF. With --page a single
page is extracted; without it every page is processed in order and
undecodable pages are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if pageNumber < 0 {
			return fmt.Errorf("invalid --page %d: page number must be greater than 0", pageNumber)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		var results []processor.PageResult
		if pageNumber > 0 {
			result, err := client.ExtractPage(args[0], pageNumber)
			if err != nil {
				return err
			}
			results = []processor.PageResult{result}
		} else {
			results, err = extractAll(client, args[0])
			if err != nil {
				return err
			}
		}

		var out strings.Builder
		extracted := 0
		imageCount := 0
		for _, result := range results {
			if !result.Available {
				continue
			}
			extracted++
			imageCount += len(result.ImagePaths)
			fmt.Fprintf(&out, "# Page %d\n\n%s\n\n", result.Metadata.Page, result.Text)
		}

		if extracted == 0 {
			return fmt.Errorf("no pages could be extracted from %s", args[0])
		}

		if outputPath != "" {
			if err := os.WriteFile(outputPath, []byte(out.String()), 0o644); err != nil {
				return fmt.Errorf("write output file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Extracted %d page(s) and %d image(s) to %s\n", extracted, imageCount, outputPath)
			return nil
		}

		fmt.Print(out.String())
		fmt.Fprintf(os.Stderr, "Extracted %d page(s) and %d image(s)\n", extracted, imageCount)
		return nil
	},
}

func extractAll(client *processor.Client, path string) ([]processor.PageResult, error) {
	meta, err := client.Metadata(path)
	if err != nil {
		return nil, err
	}
	if !meta.Available {
		return nil, fmt.Errorf("document unavailable: %s", path)
	}

	bar := progressbar.NewOptions(meta.Metadata.PageCount,
		progressbar.OptionSetDescription("extracting"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	return client.ExtractAll(path, func(processor.PageResult) {
		_ = bar.Add(1)
	})
}

func init() {
	extractCmd.Flags().IntVarP(&pageNumber, "page", "p", 0, "1-based page number (0 = all pages)")
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write extracted text to file instead of stdout")
	rootCmd.AddCommand(extractCmd)
}
