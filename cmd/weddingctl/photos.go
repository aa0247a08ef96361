package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wedding-invitation/domain/assets"
	"wedding-invitation/pkg/config"
	"wedding-invitation/pkg/di"
	"wedding-invitation/pkg/imaging"
)

func newPhotosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "photos",
		Short: "Show which image files each gallery photo uses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			details, err := config.LoadWedding(cfg.Wedding.DetailsFile)
			if err != nil {
				return err
			}
			manifest, err := di.LoadManifest(cfg)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCATEGORY\tTITLE\tTHUMB\tLARGE")
			for _, p := range assets.BindPhotos(details.Photos, manifest) {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Category, p.Title, orDash(p.ThumbKey), orDash(p.FullKey))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d thumbnails, %d large images under %s\n",
				manifest.Len(assets.TierThumb), manifest.Len(assets.TierLarge), cfg.Assets.Dir)
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func newThumbsCmd() *cobra.Command {
	var (
		force bool
		size  int
	)

	cmd := &cobra.Command{
		Use:   "thumbs",
		Short: "Generate gallery thumbnails from the large images",
		Long: `Scale every image in the large folder down so its longer side is at most
--size pixels and write it to the thumbnail folder under the same name.
Existing thumbnails are kept unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if size <= 0 {
				size = cfg.Assets.ThumbSize
			}

			largeDir := filepath.Join(cfg.Assets.Dir, cfg.Assets.LargeDir)
			thumbDir := filepath.Join(cfg.Assets.Dir, cfg.Assets.ThumbDir)
			keys, err := assets.ScanDir(os.DirFS(largeDir), ".")
			if err != nil {
				return err
			}
			if err := os.MkdirAll(thumbDir, 0755); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			made, skipped := 0, 0
			for _, key := range keys {
				dst := filepath.Join(thumbDir, key)
				if _, err := os.Stat(dst); err == nil && !force {
					skipped++
					continue
				}
				if err := imaging.ThumbnailFile(filepath.Join(largeDir, key), dst, size); err != nil {
					fmt.Fprintf(out, "  %s: %v\n", key, err)
					continue
				}
				made++
				fmt.Fprintf(out, "  %s\n", key)
			}
			fmt.Fprintf(out, "%d thumbnails written, %d already present\n", made, skipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing thumbnails")
	cmd.Flags().IntVar(&size, "size", 0, "longest side in pixels (default THUMB_SIZE)")
	return cmd
}
