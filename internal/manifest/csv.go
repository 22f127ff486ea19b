package manifest

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the header and rows. Lines end in CRLF like the spreadsheet
// tools the archive is handed to expect.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
