// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grouping

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/danielhkuo/hr-toolkit/models"
)

const (
	ExportContentType = "text/csv; charset=utf-8"
	exportDateLayout  = "2006/1/2"
)

var exportHeader = []string{"組別", "姓名"}

// Export writes groups as CSV, one row per member in group order.
// Output starts with a UTF-8 byte order mark so spreadsheet tools decode
// non-ASCII names correctly.
func Export(w io.Writer, groups []models.Group) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, g := range groups {
		label := Label(g)
		for _, m := range g.Members {
			if err := cw.Write([]string{label, m.Name}); err != nil {
				return fmt.Errorf("failed to write export row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return bw.Close()
}

var unsafeFilenameChars = strings.NewReplacer("/", "-", "\\", "-", ":", "-")

// ExportFilename names the export after the given date
func ExportFilename(t time.Time) string {
	return unsafeFilenameChars.Replace(fmt.Sprintf("分組名單_%s.csv", t.Format(exportDateLayout)))
}
