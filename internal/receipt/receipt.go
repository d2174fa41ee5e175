// Package receipt renders the booking receipt the customer downloads after
// a successful submission. The primary renderer produces a PDF; if that
// fails a plain-text receipt is produced instead. Either way the booking
// record itself is already written — receipt generation is best effort.
package receipt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/touchandglow905/touchandglow/internal/domain"
)

// Salon identity, build-time constants.
const (
	SalonName    = "TOUCH & GLOW"
	SalonTagline = "PREMIUM FAMILY SALON"
	SalonContact = "Ahmedabad, Gujarat | +91 99135 46386"
)

var reUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Filename derives the deterministic download name (without extension)
// from the customer name and booking date.
func Filename(b *domain.Booking) string {
	name := reUnsafe.ReplaceAllString(strings.TrimSpace(b.CustomerName), "_")
	if name == "" {
		name = "customer"
	}
	return fmt.Sprintf("TG_Receipt_%s_%s", name, b.Date)
}

type Artifact struct {
	Name        string // filename including extension
	ContentType string
	Data        []byte
}

// Render produces the receipt, falling back to the text renderer when PDF
// generation fails. logoPath may be empty or missing; the header is drawn
// without the logo then.
func Render(b *domain.Booking, logoPath string) (Artifact, error) {
	if data, err := renderPDF(b, logoPath); err == nil {
		return Artifact{Name: Filename(b) + ".pdf", ContentType: "application/pdf", Data: data}, nil
	}
	data := renderText(b)
	return Artifact{Name: Filename(b) + ".txt", ContentType: "text/plain; charset=utf-8", Data: data}, nil
}

func renderPDF(b *domain.Booking, logoPath string) (data []byte, err error) {
	// fpdf panics on some malformed inputs; keep the fallback reachable.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("receipt: pdf renderer panicked: %v", r)
		}
	}()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	// Black header band with the salon identity.
	doc.SetFillColor(15, 15, 15)
	doc.Rect(0, 0, 210, 60, "F")
	if logoPath != "" {
		if _, statErr := os.Stat(logoPath); statErr == nil {
			opts := fpdf.ImageOptions{ImageType: strings.TrimPrefix(filepath.Ext(logoPath), "."), ReadDpi: true}
			doc.ImageOptions(logoPath, 10, 10, 30, 30, false, opts, 0, "")
		}
	}
	doc.SetTextColor(212, 175, 55)
	doc.SetFont("Helvetica", "B", 24)
	doc.Text(50, 22, SalonName)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "", 10)
	doc.Text(50, 30, SalonTagline)
	doc.Text(50, 38, SalonContact)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(15, 75, "BOOKING RECEIPT")
	doc.Line(15, 77, 200, 77)

	y := 90.0
	doc.SetFont("Helvetica", "", 11)
	doc.Text(15, y, "Customer Name: "+b.CustomerName)
	doc.Text(120, y, "Phone: "+b.CustomerPhone)
	y += 10
	doc.Text(15, y, "Date: "+b.Date)
	doc.Text(120, y, "Time Slot: "+b.SlotTime)

	y += 20
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(15, y, "Services Selected:")
	y += 10
	doc.SetFont("Helvetica", "", 11)
	for i, name := range strings.Split(b.ServiceName, ", ") {
		doc.Text(15, y, fmt.Sprintf("%d. %s", i+1, name))
		y += 8
	}

	// Total box.
	y += 10
	doc.SetDrawColor(212, 175, 55)
	doc.SetLineWidth(1)
	doc.RoundedRect(120, y, 75, 25, 3, "1234", "D")
	doc.SetFont("Helvetica", "", 12)
	doc.Text(133, y+8, "TOTAL AMOUNT")
	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(212, 175, 55)
	doc.Text(133, y+18, fmt.Sprintf("Rs. %s/-", b.ServicePrice))

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(150, 150, 150)
	doc.Text(70, 280, "Thank you for choosing Touch & Glow!")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderText is the degraded renderer; it cannot fail.
func renderText(b *domain.Booking) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s\n%s\n\n", SalonName, SalonTagline, SalonContact)
	sb.WriteString("BOOKING RECEIPT\n")
	sb.WriteString("----------------------------------------\n")
	fmt.Fprintf(&sb, "Customer: %s\nPhone:    %s\nDate:     %s\nTime:     %s\n\n",
		b.CustomerName, b.CustomerPhone, b.Date, b.SlotTime)
	sb.WriteString("Services:\n")
	for i, name := range strings.Split(b.ServiceName, ", ") {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, name)
	}
	fmt.Fprintf(&sb, "\nTOTAL: Rs. %s/-\n\nThank you for choosing Touch & Glow!\n", b.ServicePrice)
	return []byte(sb.String())
}
