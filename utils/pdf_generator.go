package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/tandin2000/invoiceBuilder/models"
)

// Page geometry, in points on an A4 canvas. All sections are placed at
// absolute coordinates; each section returns the Y where the next one starts.
const (
	pageMargin   = 40.0
	leftX        = 40.0
	rightX       = 300.0
	rightColW    = 260.0
	contentWidth = 520.0
	pageBottomY  = 780.0
)

type invoiceDoc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// GenerateInvoicePDF renders the invoice document and returns the PDF bytes.
// The invoice must carry totals computed by the calculator; the renderer
// derives its totals table from the same arithmetic, never from stored
// values. Settings may be nil (rendered without letterhead, signature, or
// default terms); the client is required.
func GenerateInvoicePDF(invoice *models.Invoice, client *models.Client, settings *models.Setting) ([]byte, error) {
	if invoice == nil {
		return nil, errors.New("invoice is required")
	}
	if client == nil {
		return nil, errors.New("client is required")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(1)
	pdf.AddPage()

	d := &invoiceDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	switch invoice.ResolveKind() {
	case models.KindLineItems:
		d.drawClassicInvoice(invoice, client)
	default:
		d.drawWorkOrder(invoice, client, settings)
	}

	d.drawTermsPage(invoice, settings)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", invoice.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

// text places a single line with its top-left corner at (x, y), wrapping
// pdfkit-style coordinates onto a cell.
func (d *invoiceDoc) text(x, y, w, size float64, style, align, s string) {
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.SetXY(x, y)
	d.pdf.CellFormat(w, size+2, d.tr(s), "", 0, align, false, 0, "")
}

// paragraph places wrapped text with its top-left corner at (x, y).
func (d *invoiceDoc) paragraph(x, y, w, size float64, style, align, s string) {
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.SetXY(x, y)
	d.pdf.MultiCell(w, size+2, d.tr(s), "", align, false)
}

// image embeds a pre-validated asset. Width-only placement keeps the aspect
// ratio.
func (d *invoiceDoc) image(name string, asset ImageAsset, x, y, w, h float64) {
	opts := gofpdf.ImageOptions{ImageType: asset.Type}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(asset.Data))
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// drawHeader places the company logo (best-effort), the document title, and
// the invoice number. Returns the client block start Y.
func (d *invoiceDoc) drawHeader(invoice *models.Invoice, title string) float64 {
	topY := pageMargin

	if logo, ok := LoadImageFile(os.Getenv("LOGO_PATH")); ok {
		d.image("company-logo", logo, leftX, topY-20, 250, 0)
	}

	d.text(rightX, topY, rightColW, 13, "B", "L", title)
	d.text(rightX+rightColW-80, topY, 80, 13, "B", "R", invoice.InvoiceNumber)

	return topY + 90
}

// drawClientBlock emits the "To" block; blank fields produce no line at all,
// so populated lines stack with no gaps. Returns the Y below the block.
func (d *invoiceDoc) drawClientBlock(client *models.Client, clientY float64) float64 {
	d.text(leftX, clientY, 40, 10, "B", "L", "To")

	toY := clientY + 12
	d.text(leftX+20, toY, 240, 11, "", "L", client.Name)
	toY += 12
	if client.Company != "" {
		d.text(leftX+20, toY, 240, 11, "", "L", client.Company)
		toY += 12
	}
	addr := client.Address
	if addr.Street != "" {
		d.text(leftX+20, toY, 240, 11, "", "L", addr.Street)
		toY += 12
	}
	if addr.City != "" || addr.State != "" || addr.ZipCode != "" {
		d.text(leftX+20, toY, 240, 11, "", "L",
			fmt.Sprintf("%s, %s %s", addr.City, addr.State, addr.ZipCode))
		toY += 12
	}
	if addr.Country != "" {
		d.text(leftX+20, toY, 240, 11, "", "L", addr.Country)
		toY += 12
	}
	return toY
}

// drawTermsPage emits the terms and conditions on a page of its own, only
// when the effective terms text is non-blank.
func (d *invoiceDoc) drawTermsPage(invoice *models.Invoice, settings *models.Setting) {
	terms := invoice.EffectiveTerms(settings)
	if terms == "" {
		return
	}
	d.pdf.AddPage()
	d.text(leftX, pageMargin, contentWidth, 13, "B", "L", "Terms & Conditions")
	d.paragraph(leftX, pageMargin+24, contentWidth, 9, "", "L", terms)
}
