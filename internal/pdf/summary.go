// Package pdf renders the consolidated reclamation report.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"reclamations/backend/internal/models"
)

var columns = []struct {
	title string
	width float64
}{
	{"ID", 15},
	{"Type", 35},
	{"Description", 95},
	{"Statut", 30},
	{"Date", 45},
	{"Commande", 30},
}

// Summary renders one table row per reclamation into a single PDF and
// returns the document bytes. The input is not mutated; an empty list
// yields a valid document with just the header.
func Summary(recs []models.Reclamation) ([]byte, error) {
	doc := gofpdf.New("L", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr("Toutes les réclamations"), true)
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(0, 12, tr("Toutes les réclamations"))
	doc.Ln(16)

	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for _, col := range columns {
		doc.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 10)
	for _, rec := range recs {
		cells := []string{
			fmt.Sprintf("%d", rec.ID),
			rec.Type,
			rec.Description,
			rec.Statut,
			rec.DateReclamation.Format(time.DateTime),
			fmt.Sprintf("%d", rec.OrderID),
		}
		for i, col := range columns {
			doc.CellFormat(col.width, 8, tr(cells[i]), "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render reclamation summary: %w", err)
	}
	return buf.Bytes(), nil
}
