package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"wedding-invitation/application/serviceimpl"
	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/models"
	"wedding-invitation/domain/services"
	"wedding-invitation/pkg/config"
	"wedding-invitation/pkg/di"
	"wedding-invitation/pkg/logger"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

// openRSVPService opens the configured store. Nothing here submits, so no
// celebrator or notifier is attached.
func openRSVPService() (services.RSVPService, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Log.Dir, false); err != nil {
		return nil, nil, err
	}
	kv, err := di.OpenKVStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return serviceimpl.NewRSVPService(kv, nil, nil), func() { kv.Close() }, nil
}

func newRSVPsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rsvps",
		Short: "List guest replies",
		Long:  "List every stored reply with a total head count. Formats: table, json, csv.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := openRSVPService()
			if err != nil {
				return err
			}
			defer closeStore()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			records, err := svc.ListRSVPs(ctx)
			if err != nil {
				return err
			}
			return writeRSVPs(cmd.OutOrStdout(), records, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or csv")
	return cmd
}

func writeRSVPs(w io.Writer, records []models.RSVPRecord, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.RSVPRecordsToListResponse(records))

	case formatCSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"id", "name", "guests", "phone", "message", "submitted_at"})
		for _, r := range records {
			cw.Write([]string{
				strconv.FormatInt(r.ID, 10),
				r.Name,
				strconv.Itoa(r.Guests),
				r.Phone,
				r.Message,
				r.SubmittedAt.Format(time.RFC3339),
			})
		}
		cw.Flush()
		return cw.Error()

	case formatTable:
		list := dto.RSVPRecordsToListResponse(records)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tGUESTS\tPHONE\tSUBMITTED\tMESSAGE")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.Name, r.Guests, r.Phone, r.SubmittedAt.Local().Format("2006-01-02 15:04"), r.Message)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n%d replies, %d guests\n", list.Total, list.TotalGuests)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func newWishesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wishes",
		Short: "Print the wishes shown behind the reply form, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := openRSVPService()
			if err != nil {
				return err
			}
			defer closeStore()

			wishes, err := svc.Wishes(context.Background())
			if err != nil {
				return err
			}
			for _, wish := range wishes {
				fmt.Fprintln(cmd.OutOrStdout(), wish)
			}
			return nil
		},
	}
}
