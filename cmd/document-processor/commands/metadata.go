package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata <pdf-file>",
	Short: "Print the document metadata record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Metadata(args[0])
		if err != nil {
			return err
		}
		if !result.Available {
			return fmt.Errorf("document unavailable: %s", args[0])
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Metadata)
	},
}

func init() {
	rootCmd.AddCommand(metadataCmd)
}
