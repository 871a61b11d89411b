package export

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RetirementCertificate holds the data printed on a credit retirement
// certificate. QRImagePNG is a pre-rendered PNG pointing at the on-chain
// transaction.
type RetirementCertificate struct {
	DisplayName string
	Wallet      string
	QuantityT   float64
	ProjectName string
	TxHash      string
	RetiredAt   time.Time
	QRImagePNG  []byte
}

var filenameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// CertificateFilename derives a download filename from the holder's display
// name, stripping anything unsafe for a filesystem.
func CertificateFilename(displayName string) string {
	name := filenameUnsafe.ReplaceAllString(strings.TrimSpace(displayName), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "certificate"
	}
	return name + "-retirement-certificate.pdf"
}

// RenderCertificate lays out an A4 retirement certificate and writes the PDF
// to w.
func RenderCertificate(w io.Writer, cert RetirementCertificate) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(22, 101, 52)
	pdf.Rect(0, 0, 210, 36, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 20)
	pdf.SetXY(15, 10)
	pdf.CellFormat(180, 10, "Certificate of Carbon Credit Retirement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetX(15)
	pdf.CellFormat(180, 8, "Terra Carbon Market Portal", "", 1, "C", false, 0, "")

	pdf.SetTextColor(33, 33, 33)
	pdf.SetY(50)

	writeSection := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.SetTextColor(33, 33, 33)
		pdf.MultiCell(120, 8, value, "", "L", false)
		pdf.Ln(2)
	}

	writeSection("Retired by", cert.DisplayName)
	writeSection("Wallet", cert.Wallet)
	writeSection("Quantity", fmt.Sprintf("%.2f tCO2e", cert.QuantityT))
	writeSection("Project", cert.ProjectName)
	writeSection("Transaction", cert.TxHash)
	writeSection("Retirement date", cert.RetiredAt.Format("2 January 2006"))

	if len(cert.QRImagePNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("tx-qr", opts, bytes.NewReader(cert.QRImagePNG))
		pdf.ImageOptions("tx-qr", 155, 110, 40, 40, false, opts, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.SetXY(155, 151)
		pdf.CellFormat(40, 5, "Scan to verify on-chain", "", 1, "C", false, 0, "")
	}

	// Footer
	pdf.SetY(-30)
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(3)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(180, 6,
		"This certificate confirms the permanent retirement of the credits listed above.",
		"", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render certificate: %w", err)
	}
	return nil
}
