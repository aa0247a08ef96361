package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "weddingctl",
		Short: "Inspect replies and prepare images for the wedding invitation",
		Long: `weddingctl reads the same configuration and storage as the server.

Use it to export the guest list, check which images the gallery photos
resolved to, and generate thumbnails from the large images.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRSVPsCmd())
	rootCmd.AddCommand(newWishesCmd())
	rootCmd.AddCommand(newPhotosCmd())
	rootCmd.AddCommand(newThumbsCmd())
	rootCmd.AddCommand(newLogsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
