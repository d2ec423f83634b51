// Package export renders journal entries into a PDF document.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/moodnest/moodnest-api/pkg/types"
	"github.com/moodnest/moodnest-api/pkg/utils"
)

// JournalPDF writes the given entries into dir and returns the file path.
// The file name encodes the exported date range.
func JournalPDF(dir string, entries []types.JournalEntry, from, to time.Time) (string, error) {
	filePath := filepath.Join(dir, fmt.Sprintf("moodnest_%s_%s.pdf", from.Format("20060102"), to.Format("20060102")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "MoodNest Journal Export")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("From %s to %s", from.Format("02 Jan 2006"), to.Format("02 Jan 2006")))
	pdf.Ln(12)

	for _, entry := range entries {
		createdAt := time.Unix(entry.CreatedAt, 0)

		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, entry.Title, "", "L", false)

		pdf.SetFont("Helvetica", "I", 10)
		meta := []string{createdAt.Format("02 Jan 2006"), entry.PrimaryMood}
		if entry.Tags != "" {
			meta = append(meta, entry.Tags)
		}
		pdf.MultiCell(0, 5, strings.Join(meta, "  |  "), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, utils.StripHTMLTags(entry.ContentHTML), "", "L", false)
		pdf.Ln(6)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
