package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// WriteCacheStatus prints the download-cache status. JSON output mode
// is honored; everything else gets the plain text block.
func WriteCacheStatus(status schema.CacheStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCacheStatusText(w, status)
	}, "Wrote status")
}

func writeCacheStatusText(w io.Writer, status schema.CacheStatus) error {
	if _, err := fmt.Fprintf(w, "Backend:  %s\n", status.Backend); err != nil {
		return err
	}
	if status.Location != "" {
		if _, err := fmt.Fprintf(w, "Location: %s\n", status.Location); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Entries:  %d\n", status.EntryCount); err != nil {
		return err
	}
	if status.EntryCount == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Size:     %d bytes\n", status.TotalBytes); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Entries span %s to %s\n",
		time.Unix(status.OldestUnix, 0).Format(time.RFC3339),
		time.Unix(status.NewestUnix, 0).Format(time.RFC3339))
	return err
}
