package statement

import (
	"fmt"

	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	accountsvc "github.com/amirasaad/onlinebanking/pkg/service/account"
	"github.com/jung-kurt/gofpdf"
)

var columnWidths = []float64{42, 36, 30, 40, 42}

func writePDF(path string, details accountsvc.Details, history []*account.Transaction) error {
	return buildPDF(details, history).OutputFileAndClose(path)
}

// buildPDF lays out the statement. Text goes through the cp1252 translator that
// matches the core Arial font, so names like "Zoë" render correctly.
func buildPDF(details accountsvc.Details, history []*account.Transaction) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Account Statement", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Account Statement")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Holder: %s", details.Holder),
		fmt.Sprintf("Account Number: %d", details.Number),
		fmt.Sprintf("Phone Number: %s", details.Phone),
		fmt.Sprintf("Current Balance: %s", details.Balance.Display()),
	} {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	for i, c := range columns {
		pdf.CellFormat(columnWidths[i], 7, tr(c), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 10)
	for _, tx := range history {
		for i, v := range row(tx) {
			align := "L"
			if i == 2 || i == 3 {
				align = "R"
			}
			pdf.CellFormat(columnWidths[i], 7, tr(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(7)
	}
	return pdf
}
