// Package ticket renders a booking as a printable one-page PDF with a QR code
// that links back to the booking.
package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/pkordes/travel-booking/internal/domain"
)

const (
	qrSize     = 256 // px
	dateLayout = "Mon, 02 Jan 2006"
)

// Renderer produces PDF tickets. BaseURL is the public origin used for the QR link.
type Renderer struct {
	baseURL string
}

// NewRenderer returns a Renderer whose QR codes point at baseURL/bookings/{id}.
func NewRenderer(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
}

// BookingURL is the link encoded in a booking's QR code.
func (r *Renderer) BookingURL(b domain.Booking) string {
	return fmt.Sprintf("%s/bookings/%s", r.baseURL, b.ID)
}

// Render returns the PDF bytes for b.
func (r *Renderer) Render(b domain.Booking) ([]byte, error) {
	qr, err := qrcode.Encode(r.BookingURL(b), qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("ticket.Renderer.Render: qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Booking "+b.ID.String(), true)
	pdf.SetFooterFunc(func() {
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(15, 285, 195, 285)
		pdf.SetY(288)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 8, "Present this ticket at check-in.", "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252, for accented names

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "TRAVEL TICKET")
	pdf.Ln(18)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	// Summary box with the QR code to its right.
	top := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, top, 120, 55, "F")

	pdf.SetXY(20, top+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		"Booking ID: " + b.ID.String(),
		"Status: " + strings.ToUpper(string(b.Status)),
		fmt.Sprintf("Travelers: %d", b.NumberOfTravelers),
		"Total: " + b.TotalPrice.String(),
	} {
		pdf.SetX(20)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qr))
	pdf.ImageOptions("qr", 145, top+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(top + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Scan the QR code to view this booking online.")
	pdf.Ln(10)

	section(pdf, "TRIP")
	pdf.SetFont("Helvetica", "", 12)
	field(pdf, tr, "Package", b.PackageName)
	field(pdf, tr, "Destination", b.DestinationName)
	field(pdf, tr, "Travel date", b.TravelDate.Format(dateLayout))
	field(pdf, tr, "Booked on", b.BookingDate.Format(dateLayout))
	pdf.Ln(4)

	section(pdf, "CONTACT")
	pdf.SetFont("Helvetica", "", 12)
	field(pdf, tr, "Phone", b.ContactPhone)
	field(pdf, tr, "E-mail", b.ContactEmail)
	if b.SpecialRequests != "" {
		pdf.MultiCell(0, 8, tr("Special requests: "+b.SpecialRequests), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("ticket.Renderer.Render: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
}

// field writes one "label: value" line, skipping empty values.
func field(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}
	pdf.Cell(0, 8, tr(label+": "+value))
	pdf.Ln(6)
}
