package utils

import (
	"fmt"

	"github.com/tandin2000/invoiceBuilder/models"
)

// Work-order form geometry. The printed form always keeps blank rows for
// handwritten additions, hence the padding and floor on row counts.
const (
	detailRowH     = 16.0
	tableRowH      = 14.0
	headerBandH    = 18.0
	footerH        = 100.0
	footerLeftW    = 360.0
	footerRightW   = 160.0
	totalsRowH     = 14.3
	totalsLabelW   = 100.0
	labourPadRows  = 2
	labourMinRows  = 8
	materialPad    = 2
	materialMinRow = 15
)

var labourCols = []struct {
	label string
	width float64
}{
	{"NOTES", 125},
	{"LABOUR", 90},
	{"HRS.", 70},
	{"RATE", 70},
	{"AMOUNT", 165},
}

var materialCols = []struct {
	label string
	width float64
}{
	{"QTY.", 60},
	{"MATERIAL", 295},
	{"AMOUNT", 165},
}

func labourRowCount(n int) int {
	if n+labourPadRows > labourMinRows {
		return n + labourPadRows
	}
	return labourMinRows
}

func materialRowCount(n int) int {
	if n+materialPad > materialMinRow {
		return n + materialPad
	}
	return materialMinRow
}

func jobTypeChecked(selected []string, jobType string) bool {
	for _, s := range selected {
		if s == jobType {
			return true
		}
	}
	return false
}

// drawWorkOrder lays out the canonical labour/materials invoice form. Each
// section is placed at the running Y total of the sections before it.
func (d *invoiceDoc) drawWorkOrder(inv *models.Invoice, client *models.Client, settings *models.Setting) {
	clientY := d.drawHeader(inv, "Work Order / Invoice")
	d.drawClientBlock(client, clientY)

	detailsBottom := d.drawDetailsTable(inv, client, pageMargin+25)
	descY := d.drawJobTypeGrid(inv, detailsBottom+6)
	labourY := d.drawDescriptionBlock(inv, descY)
	materialsY := d.drawLabourTable(inv, labourY)
	footerY := d.drawMaterialsTable(inv, materialsY)
	d.drawFormFooter(inv, settings, footerY+2)
}

// drawDetailsTable draws the bordered label/value grid on the right column.
// Returns the Y below the grid.
func (d *invoiceDoc) drawDetailsTable(inv *models.Invoice, client *models.Client, y float64) float64 {
	labels := []string{
		"Invoice Date:",
		"Customer Email:",
		"Customer Number:",
		"Job Location:",
		"Job Date:",
		"Job Start:",
		"Job Finish:",
	}
	issue := inv.IssueDate
	values := []string{
		FormatDate(&issue),
		client.Email,
		client.Phone,
		inv.JobLocation,
		FormatDate(inv.JobDate),
		FormatDateTime(inv.JobStart),
		FormatDateTime(inv.JobFinish),
	}

	rows := float64(len(labels))
	labelW := 90.0
	valueW := rightColW - labelW

	d.pdf.Rect(rightX, y, rightColW, detailRowH*rows, "D")
	for i := 1; i < len(labels); i++ {
		ly := y + detailRowH*float64(i)
		d.pdf.Line(rightX, ly, rightX+rightColW, ly)
	}
	d.pdf.Line(rightX+labelW, y, rightX+labelW, y+detailRowH*rows)

	rowY := y
	for i := range labels {
		d.text(rightX+4, rowY+3, labelW-8, 9, "", "L", labels[i])
		d.text(rightX+labelW+4, rowY+3, valueW-8, 9, "", "L", values[i])
		rowY += detailRowH
	}
	return rowY
}

// drawJobTypeGrid draws the fixed 3x2 checkbox grid; a checked box gets an X
// glyph drawn as two crossing diagonals. Returns the description block Y.
func (d *invoiceDoc) drawJobTypeGrid(inv *models.Invoice, y float64) float64 {
	const (
		cols        = 3
		rowSpacing  = 20.0
		checkboxOff = 7.0
		boxSize     = 8.0
	)
	gridLeft := rightX + 10
	gridWidth := rightColW - 20
	colSpacing := float64(int(gridWidth) / cols)

	for i, jt := range models.JobTypes {
		col := i % cols
		row := i / cols
		boxX := gridLeft + float64(col)*colSpacing
		boxY := y + checkboxOff + float64(row)*rowSpacing

		d.pdf.Rect(boxX, boxY, boxSize, boxSize, "D")
		if jobTypeChecked(inv.JobType, jt) {
			d.pdf.Line(boxX, boxY, boxX+boxSize, boxY+boxSize)
			d.pdf.Line(boxX+boxSize, boxY, boxX, boxY+boxSize)
		}
		d.text(boxX+12, boxY-2, colSpacing-12, 8, "", "L", jt)
	}
	return y + 40
}

// drawDescriptionBlock draws the inverse header band and the fixed-height
// work description box. Returns the labour table Y.
func (d *invoiceDoc) drawDescriptionBlock(inv *models.Invoice, y float64) float64 {
	d.drawHeaderBand(y, "DESCRIPTION OF WORK", 10)
	y += headerBandH
	d.pdf.Rect(leftX, y, contentWidth, 50, "D")
	d.paragraph(leftX+5, y+5, contentWidth-10, 9, "", "L", inv.DescriptionOfWork)
	return y + 50
}

// drawHeaderBand draws a full-width black band with centered white text.
func (d *invoiceDoc) drawHeaderBand(y float64, label string, size float64) {
	d.pdf.SetFillColor(0, 0, 0)
	d.pdf.Rect(leftX, y, contentWidth, headerBandH, "FD")
	d.pdf.SetTextColor(255, 255, 255)
	d.text(leftX, y+3, contentWidth, size, "B", "C", label)
	d.pdf.SetTextColor(0, 0, 0)
}

// drawLabourTable draws the 5-column labour grid with padded blank rows,
// followed by the TOTAL LABOUR band. Returns the materials table Y.
func (d *invoiceDoc) drawLabourTable(inv *models.Invoice, y float64) float64 {
	d.pdf.SetFillColor(0, 0, 0)
	d.pdf.Rect(leftX, y, contentWidth, headerBandH, "FD")
	d.pdf.SetTextColor(255, 255, 255)
	hx := leftX
	for _, c := range labourCols {
		d.text(hx, y+3, c.width, 10, "B", "C", c.label)
		hx += c.width
	}
	d.pdf.SetTextColor(0, 0, 0)
	y += headerBandH

	rows := labourRowCount(len(inv.Labour))
	d.drawTableGrid(y, rows, labourColWidths())

	rowY := y
	for i := 0; i < rows; i++ {
		var row models.LabourEntry
		if i < len(inv.Labour) {
			row = inv.Labour[i]
		}
		cx := leftX
		d.text(cx+2, rowY+2, labourCols[0].width-4, 9, "", "L", row.Notes)
		cx += labourCols[0].width
		d.text(cx+2, rowY+2, labourCols[1].width-4, 9, "", "L", row.Type)
		cx += labourCols[1].width
		d.text(cx+2, rowY+2, labourCols[2].width-4, 9, "", "L", NumberOrBlank(row.Hrs))
		cx += labourCols[2].width
		d.text(cx+2, rowY+2, labourCols[3].width-4, 9, "", "L", MoneyOrBlank(row.Rate))
		cx += labourCols[3].width
		d.text(cx+2, rowY+2, labourCols[4].width-4, 9, "", "L", MoneyOrBlank(row.Amount))
		rowY += tableRowH
	}

	d.text(leftX, rowY+3, contentWidth, 13, "B", "C", "TOTAL LABOUR")
	return rowY + headerBandH
}

// drawMaterialsTable draws the 3-column materials grid with padded blank
// rows. Returns the footer Y.
func (d *invoiceDoc) drawMaterialsTable(inv *models.Invoice, y float64) float64 {
	d.pdf.SetFillColor(0, 0, 0)
	d.pdf.Rect(leftX, y, contentWidth, headerBandH, "FD")
	d.pdf.SetTextColor(255, 255, 255)
	hx := leftX
	for _, c := range materialCols {
		d.text(hx, y+3, c.width, 10, "B", "C", c.label)
		hx += c.width
	}
	d.pdf.SetTextColor(0, 0, 0)
	y += headerBandH

	rows := materialRowCount(len(inv.Materials))
	d.drawTableGrid(y, rows, materialColWidths())

	rowY := y
	for i := 0; i < rows; i++ {
		var row models.MaterialEntry
		if i < len(inv.Materials) {
			row = inv.Materials[i]
		}
		cx := leftX
		d.text(cx+2, rowY+2, materialCols[0].width-4, 9, "", "L", NumberOrBlank(row.Qty))
		cx += materialCols[0].width
		d.text(cx+2, rowY+2, materialCols[1].width-4, 9, "", "L", row.Material)
		cx += materialCols[1].width
		d.text(cx+2, rowY+2, materialCols[2].width-4, 9, "", "L", MoneyOrBlank(row.Amount))
		rowY += tableRowH
	}
	return rowY
}

// drawTableGrid draws the outer border, the column dividers, and one
// horizontal rule per row.
func (d *invoiceDoc) drawTableGrid(y float64, rows int, colWidths []float64) {
	height := tableRowH * float64(rows)
	d.pdf.Rect(leftX, y, contentWidth, height, "D")

	cx := leftX
	for i := 0; i < len(colWidths)-1; i++ {
		cx += colWidths[i]
		d.pdf.Line(cx, y, cx, y+height)
	}
	for i := 1; i <= rows; i++ {
		ly := y + tableRowH*float64(i-1)
		d.pdf.Line(leftX, ly, leftX+contentWidth, ly)
	}
}

func labourColWidths() []float64 {
	w := make([]float64, len(labourCols))
	for i, c := range labourCols {
		w[i] = c.width
	}
	return w
}

func materialColWidths() []float64 {
	w := make([]float64, len(materialCols))
	for i, c := range materialCols {
		w[i] = c.width
	}
	return w
}

// drawFormFooter draws the split footer: acknowledgement, signature and date
// sub-blocks on the left, the totals table on the right.
func (d *invoiceDoc) drawFormFooter(inv *models.Invoice, settings *models.Setting, footerY float64) {
	d.pdf.Rect(leftX, footerY, contentWidth, footerH, "D")

	// Left zone
	d.text(leftX+5, footerY+5, 110, 8, "B", "L", "WORK ORDERED BY")
	if inv.WorkOrderedBy != "" {
		d.text(leftX+120, footerY+5, footerLeftW-125, 8, "", "L", inv.WorkOrderedBy)
	}
	d.pdf.Line(leftX, footerY+16, leftX+footerLeftW, footerY+16)

	d.paragraph(leftX+5, footerY+18, footerLeftW-10, 7, "", "J",
		"I hereby acknowledge the satisfactory completion of the above described work. "+
			"Payment needs to be made within two weeks from the invoice issue date.")

	sigColX := leftX + 75
	dateColX := leftX + 215
	sigImageY := footerY + 40
	labelY := footerY + 72

	if settings != nil && settings.Signature != "" {
		if sig, ok := DecodeSignature(settings.Signature); ok {
			const sigW, sigColW = 70.0, 90.0
			d.image("signature", sig, sigColX+(sigColW-sigW)/2, sigImageY, sigW, 25)
		} else {
			d.text(sigColX, sigImageY+10, 90, 9, "", "C", "[Invalid Signature Image]")
		}
	}
	d.text(sigColX, labelY, 90, 8, "", "C", "SIGNATURE")

	issue := inv.IssueDate
	d.text(dateColX, footerY+50, 60, 9, "", "C", FormatDate(&issue))
	d.text(dateColX, labelY, 60, 8, "", "C", "DATE")

	note := inv.FooterNote
	if note == "" {
		note = models.DefaultFooterNote
	}
	d.text(leftX+5, footerY+footerH-10, footerLeftW-10, 11, "BI", "C", note)

	d.drawTotalsTable(inv, leftX+footerLeftW, footerY)
}

// drawTotalsTable draws the 7-row totals grid. The TOTAL row is emphasized
// with bold text and a thicker top rule. Values come from the calculator,
// not from the stored derived fields.
func (d *invoiceDoc) drawTotalsTable(inv *models.Invoice, x, y float64) {
	b := inv.Breakdown()

	labels := []string{
		"TOTAL MATERIALS",
		"TOTAL LABOUR",
		"SUBTOTAL",
		fmt.Sprintf("PST (%g%%)", inv.PST),
		fmt.Sprintf("GST (%g%%)", inv.GST),
		"OTHER CHARGES",
		"TOTAL",
	}
	values := []string{
		Money(b.MaterialsSubtotal),
		Money(b.LabourSubtotal),
		Money(b.Subtotal),
		Money(b.PSTAmount),
		Money(b.GSTAmount),
		Money(b.OtherCharges),
		Money(b.Total),
	}

	rows := float64(len(labels))
	valueW := footerRightW - totalsLabelW

	d.pdf.Rect(x, y, footerRightW, totalsRowH*rows, "D")
	for i := 1; i < len(labels); i++ {
		ly := y + totalsRowH*float64(i)
		d.pdf.Line(x, ly, x+footerRightW, ly)
	}
	d.pdf.Line(x+totalsLabelW, y, x+totalsLabelW, y+totalsRowH*rows)

	// Thicker rule above the TOTAL row
	d.pdf.SetLineWidth(2)
	ty := y + totalsRowH*(rows-1)
	d.pdf.Line(x, ty, x+footerRightW, ty)
	d.pdf.SetLineWidth(1)

	for i := range labels {
		style := ""
		if i == len(labels)-1 {
			style = "B"
		}
		rowY := y + totalsRowH*float64(i) + 3
		d.text(x+5, rowY, totalsLabelW-10, 9, style, "L", labels[i])
		d.text(x+totalsLabelW+5, rowY, valueW-10, 9, style, "R", values[i])
	}
}
