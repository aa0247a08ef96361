package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wedding-invitation/pkg/config"
	"wedding-invitation/pkg/logger"
)

func newLogsCmd() *cobra.Command {
	var (
		opts logger.ReadLogsOptions
		day  string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent server log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Log.Dir, false); err != nil {
				return err
			}
			if day != "" {
				t, err := time.Parse("2006-01-02", day)
				if err != nil {
					return fmt.Errorf("invalid --day: %w", err)
				}
				opts.Day = t
			}

			entries, err := logger.ReadLogs(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s %-5s %-9s %-24s %s", e.Timestamp.Local().Format("15:04:05"), e.Level, e.Category, e.Action, e.Message)
				if e.Error != "" {
					fmt.Fprintf(out, " error=%q", e.Error)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Lines, "lines", "n", 50, "number of entries")
	f.StringVar((*string)(&opts.Category), "category", "", "startup, api, rsvp, gallery, websocket, scheduler or storage")
	f.StringVar((*string)(&opts.Level), "level", "", "DEBUG, INFO, WARN or ERROR")
	f.StringVar(&opts.Search, "search", "", "substring of action or message")
	f.StringVar(&day, "day", "", "YYYY-MM-DD, today when empty")
	return cmd
}
