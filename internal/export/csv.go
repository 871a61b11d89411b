package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"terra-carbon/market-portal/market-portal-backend/internal/donations"
)

// donationColumns is the fixed column order of the donation export
var donationColumns = []string{"ID", "Donor", "Amount (USD)", "Project ID", "Project Name", "Donated At"}

// DatedFilename builds a download filename stamped with the current date
func DatedFilename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.Format("2006-01-02"), ext)
}

// WriteCSV writes a header row followed by the given rows. Zero rows is a
// no-op: nothing at all is written and ok is false.
func WriteCSV(w io.Writer, columns []string, rows [][]string) (ok bool, err error) {
	if len(rows) == 0 {
		return false, nil
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return false, fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return false, fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return false, fmt.Errorf("failed to flush csv: %w", err)
	}
	return true, nil
}

// ExportDonationsCSV writes the donation feed as CSV in the fixed column
// order. An empty feed produces no output.
func ExportDonationsCSV(w io.Writer, records []donations.Donation) (bool, error) {
	rows := make([][]string, 0, len(records))
	for _, d := range records {
		rows = append(rows, []string{
			d.ID.String(),
			d.DonorName,
			strconv.FormatFloat(d.AmountUSD, 'f', 2, 64),
			d.ProjectID,
			d.ProjectName,
			d.DonatedAt.Format(time.RFC3339),
		})
	}
	return WriteCSV(w, donationColumns, rows)
}
