package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/tandin2000/invoiceBuilder/models"
)

func f(v float64) *float64 { return &v }

func testClient() *models.Client {
	return &models.Client{
		ID:    1,
		Name:  "Acme Plumbing",
		Email: "billing@acme.test",
		Phone: "555-0100",
		Address: models.Address{
			Street:  "12 Pipe St",
			City:    "Vancouver",
			State:   "BC",
			ZipCode: "V5K 0A1",
		},
	}
}

func testWorkOrder() *models.Invoice {
	inv := &models.Invoice{
		InvoiceNumber: "INV-000001",
		ClientID:      1,
		IssueDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:        "draft",
		JobType:       []string{"Contract", "Overtime"},
		Labour: []models.LabourEntry{
			{Notes: "Replace valve", Type: "FIRST HOUR", Hrs: f(1), Rate: f(120), Amount: f(120)},
		},
		Materials: []models.MaterialEntry{
			{Qty: f(2), Material: "Ball valve", Amount: f(60)},
		},
		PST: 7,
		GST: 5,
	}
	inv.ComputeTotals()
	return inv
}

// pageCount counts page objects in the produced document.
func pageCount(pdfBytes []byte) int {
	return bytes.Count(pdfBytes, []byte("/Type /Page")) -
		bytes.Count(pdfBytes, []byte("/Type /Pages"))
}

func TestLabourRowCount(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 8}, {3, 8}, {6, 8}, {7, 9}, {10, 12},
	}
	for _, c := range cases {
		if got := labourRowCount(c.n); got != c.want {
			t.Fatalf("labourRowCount(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestMaterialRowCount(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 15}, {10, 15}, {13, 15}, {14, 16}, {20, 22},
	}
	for _, c := range cases {
		if got := materialRowCount(c.n); got != c.want {
			t.Fatalf("materialRowCount(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestJobTypeChecked(t *testing.T) {
	selected := []string{"Contract", "Overtime"}
	if !jobTypeChecked(selected, "Contract") || !jobTypeChecked(selected, "Overtime") {
		t.Fatalf("selected job types must report checked")
	}
	if jobTypeChecked(selected, "Day Work") {
		t.Fatalf("unselected job type must not report checked")
	}
	if jobTypeChecked(nil, "Contract") {
		t.Fatalf("empty selection must report nothing checked")
	}
}

func TestGenerateInvoicePDFWorkOrder(t *testing.T) {
	out, err := GenerateInvoicePDF(testWorkOrder(), testClient(), nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
	if got := pageCount(out); got != 1 {
		t.Fatalf("work order without terms should be one page, got %d", got)
	}
}

func TestGenerateInvoicePDFTermsPage(t *testing.T) {
	settings := &models.Setting{
		CompanyName:        "Acme Plumbing Ltd",
		TermsAndConditions: "Payment is due within 30 days.",
	}
	out, err := GenerateInvoicePDF(testWorkOrder(), testClient(), settings)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := pageCount(out); got != 2 {
		t.Fatalf("expected a separate terms page, got %d pages", got)
	}
}

func TestGenerateInvoicePDFCorruptSignature(t *testing.T) {
	settings := &models.Setting{
		CompanyName: "Acme Plumbing Ltd",
		Signature:   "data:image/png;base64,not-really-base64!!",
	}
	out, err := GenerateInvoicePDF(testWorkOrder(), testClient(), settings)
	if err != nil {
		t.Fatalf("corrupt signature must not fail the render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestGenerateInvoicePDFRequiresClient(t *testing.T) {
	if _, err := GenerateInvoicePDF(testWorkOrder(), nil, nil); err == nil {
		t.Fatalf("expected an error for a nil client")
	}
	if _, err := GenerateInvoicePDF(nil, testClient(), nil); err == nil {
		t.Fatalf("expected an error for a nil invoice")
	}
}

func TestGenerateInvoicePDFClassicPagination(t *testing.T) {
	inv := &models.Invoice{
		InvoiceNumber: "INV-000002",
		Kind:          models.KindLineItems,
		ClientID:      1,
		IssueDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:        "sent",
	}
	for i := 0; i < 60; i++ {
		inv.LineItems = append(inv.LineItems, models.LineItem{
			Description: "Service item",
			Quantity:    1,
			UnitPrice:   25,
			TaxRate:     12,
		})
	}
	inv.ComputeTotals()

	out, err := GenerateInvoicePDF(inv, testClient(), nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := pageCount(out); got < 2 {
		t.Fatalf("60 line items should spill onto a second page, got %d", got)
	}
}
