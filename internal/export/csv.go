// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/issuegen/internal/catalog"
)

// WriteCSV serializes the header and records to path and returns the number
// of data rows written (header excluded).
//
// Every field is quoted unconditionally and interior quotes are doubled, so
// bodies containing commas, quotes, and newlines cannot break row boundaries.
// Records terminate with CRLF regardless of host platform, keeping output
// byte-identical everywhere. The file is created if absent and truncated if
// present; there is no temp-file-and-rename step, so a failure partway
// through can leave a truncated file behind.
func WriteCSV(path string, header []string, records []catalog.IssueRecord) (int, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("opening output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeRow(w, header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := writeRow(w, rec.Fields()); err != nil {
			return i, fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("flushing output: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing output file: %w", err)
	}
	return len(records), nil
}

// writeRow emits one quote-all CSV record terminated by CRLF.
func writeRow(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := w.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
			return err
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}
