package utils

import (
	"fmt"

	"github.com/tandin2000/invoiceBuilder/models"
)

// Classic line-item layout, kept for invoices created before the work-order
// form. Rows flow top to bottom with a greedy page break: a row that would
// land past the near-bottom threshold starts a new page at the top margin.
const classicRowH = 18.0

var classicCols = []struct {
	label string
	width float64
}{
	{"DESCRIPTION", 260},
	{"QTY.", 60},
	{"UNIT PRICE", 80},
	{"TAX %", 50},
	{"AMOUNT", 70},
}

func (d *invoiceDoc) drawClassicInvoice(inv *models.Invoice, client *models.Client) {
	clientY := d.drawHeader(inv, "Invoice")
	afterClient := d.drawClientBlock(client, clientY)

	d.drawClassicMeta(inv, pageMargin+25)

	y := afterClient + 20
	y = d.drawClassicItems(inv, y)
	y = d.drawClassicTotals(inv, y+10)

	if inv.Notes != "" {
		y = d.breakIfNeeded(y+20, 40)
		d.text(leftX, y, 100, 10, "B", "L", "Notes")
		d.paragraph(leftX, y+14, contentWidth, 9, "", "L", inv.Notes)
	}
}

// drawClassicMeta draws the issue/due/status rows on the right column.
func (d *invoiceDoc) drawClassicMeta(inv *models.Invoice, y float64) {
	labels := []string{"Invoice Date:", "Due Date:", "Status:"}
	issue, due := inv.IssueDate, inv.DueDate
	values := []string{FormatDate(&issue), FormatDate(&due), inv.Status}

	rows := float64(len(labels))
	labelW := 90.0

	d.pdf.Rect(rightX, y, rightColW, detailRowH*rows, "D")
	for i := 1; i < len(labels); i++ {
		ly := y + detailRowH*float64(i)
		d.pdf.Line(rightX, ly, rightX+rightColW, ly)
	}
	d.pdf.Line(rightX+labelW, y, rightX+labelW, y+detailRowH*rows)

	rowY := y
	for i := range labels {
		d.text(rightX+4, rowY+3, labelW-8, 9, "", "L", labels[i])
		d.text(rightX+labelW+4, rowY+3, rightColW-labelW-8, 9, "", "L", values[i])
		rowY += detailRowH
	}
}

// breakIfNeeded starts a new page when a block of the given height would run
// past the bottom threshold, and returns the Y to draw at.
func (d *invoiceDoc) breakIfNeeded(y, height float64) float64 {
	if y+height > pageBottomY {
		d.pdf.AddPage()
		return pageMargin
	}
	return y
}

// drawClassicItems emits the line-item table. Returns the Y below the rows.
func (d *invoiceDoc) drawClassicItems(inv *models.Invoice, y float64) float64 {
	y = d.breakIfNeeded(y, headerBandH+classicRowH)
	d.drawClassicItemsHeader(y)
	y += headerBandH

	for _, it := range inv.LineItems {
		y = d.breakIfNeeded(y, classicRowH)

		line := it.Quantity * it.UnitPrice
		cx := leftX
		d.text(cx+2, y+3, classicCols[0].width-4, 9, "", "L", it.Description)
		cx += classicCols[0].width
		d.text(cx+2, y+3, classicCols[1].width-4, 9, "", "R", fmt.Sprintf("%g", it.Quantity))
		cx += classicCols[1].width
		d.text(cx+2, y+3, classicCols[2].width-4, 9, "", "R", Money(it.UnitPrice))
		cx += classicCols[2].width
		d.text(cx+2, y+3, classicCols[3].width-4, 9, "", "R", fmt.Sprintf("%g%%", it.TaxRate))
		cx += classicCols[3].width
		d.text(cx+2, y+3, classicCols[4].width-4, 9, "", "R", Money(line))

		y += classicRowH
		d.pdf.Line(leftX, y, leftX+contentWidth, y)
	}
	return y
}

func (d *invoiceDoc) drawClassicItemsHeader(y float64) {
	d.pdf.SetFillColor(0, 0, 0)
	d.pdf.Rect(leftX, y, contentWidth, headerBandH, "FD")
	d.pdf.SetTextColor(255, 255, 255)
	hx := leftX
	for _, c := range classicCols {
		d.text(hx, y+3, c.width, 10, "B", "C", c.label)
		hx += c.width
	}
	d.pdf.SetTextColor(0, 0, 0)
}

// drawClassicTotals emits the subtotal/tax/total rows, bold TOTAL last.
// Totals come from the legacy per-item tax calculator.
func (d *invoiceDoc) drawClassicTotals(inv *models.Invoice, y float64) float64 {
	t := models.ComputeLineItemTotals(inv.LineItems)

	rows := []struct {
		label string
		value string
		style string
	}{
		{"SUBTOTAL", Money(t.Subtotal), ""},
		{"TAX", Money(t.TaxTotal), ""},
		{"TOTAL", Money(t.Total), "B"},
	}

	x := leftX + contentWidth - 220
	for _, row := range rows {
		y = d.breakIfNeeded(y, classicRowH)
		d.text(x, y, 120, 10, row.style, "L", row.label)
		d.text(x+120, y, 100, 10, row.style, "R", row.value)
		y += classicRowH
	}
	return y
}
