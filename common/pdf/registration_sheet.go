package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RegistrationRow is one line of the admin registration sheet.
type RegistrationRow struct {
	Name           string
	RegistrationNo string
	PhoneNumber    string
	Course         string
	Section        string
	Year           string
	Department     string
	TeamName       string
	RegisteredAt   time.Time
}

// SheetData carries everything needed to render an event's registration sheet.
type SheetData struct {
	EventTitle string
	EventDate  time.Time
	Rows       []RegistrationRow
}

// GenerateRegistrationSheet renders the registration list of an event as an
// A4 landscape PDF and returns the raw bytes for download or email attach.
func GenerateRegistrationSheet(data SheetData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, data.EventTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	subtitle := fmt.Sprintf("Registrations: %d", len(data.Rows))
	if !data.EventDate.IsZero() {
		subtitle = fmt.Sprintf("%s | %s", data.EventDate.Format("02 Jan 2006"), subtitle)
	}
	pdf.CellFormat(0, 6, subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Table header
	cols := []struct {
		title string
		width float64
	}{
		{"#", 10},
		{"Name", 52},
		{"Reg No", 32},
		{"Phone", 30},
		{"Course", 28},
		{"Section", 20},
		{"Year", 16},
		{"Department", 40},
		{"Team", 30},
		{"Registered", 24},
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range cols {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Rows
	pdf.SetFont("Arial", "", 8)
	for i, row := range data.Rows {
		values := []string{
			fmt.Sprintf("%d", i+1),
			row.Name,
			row.RegistrationNo,
			row.PhoneNumber,
			row.Course,
			row.Section,
			row.Year,
			row.Department,
			row.TeamName,
			row.RegisteredAt.Format("02/01/2006"),
		}
		for j, v := range values {
			pdf.CellFormat(cols[j].width, 7, truncate(v, 32), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		// New page with continued rows once we run off the bottom
		if pdf.GetY() > 180 {
			pdf.AddPage()
			pdf.SetFont("Arial", "B", 9)
			for _, c := range cols {
				pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetFont("Arial", "", 8)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render registration sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
