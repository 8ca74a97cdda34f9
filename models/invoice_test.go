package models

import (
	"testing"
	"time"
)

func f(v float64) *float64 { return &v }

func TestComputeWorkOrderTotalsTaxesLabourOnly(t *testing.T) {
	labour := []LabourEntry{{Type: "FIRST HOUR", Amount: f(100)}}
	materials := []MaterialEntry{{Material: "Copper pipe", Amount: f(500)}}

	got := ComputeWorkOrderTotals(labour, materials, 5, 7, 0)

	if got.Subtotal != 600 {
		t.Fatalf("expected subtotal 600, got %v", got.Subtotal)
	}
	if got.TaxTotal != 12 {
		t.Fatalf("expected taxTotal 12 (labour only), got %v", got.TaxTotal)
	}
	if got.Total != 612 {
		t.Fatalf("expected total 612, got %v", got.Total)
	}
}

func TestComputeWorkOrderTotalsEmptyLines(t *testing.T) {
	got := ComputeWorkOrderTotals(nil, nil, 5, 7, 25)
	if got.Subtotal != 0 || got.TaxTotal != 0 {
		t.Fatalf("expected zero subtotal and taxTotal, got %v / %v", got.Subtotal, got.TaxTotal)
	}
	if got.Total != 25 {
		t.Fatalf("expected total to be the other charges alone, got %v", got.Total)
	}
}

func TestComputeWorkOrderTotalsZeroRates(t *testing.T) {
	labour := []LabourEntry{{Type: "FIRST HOUR", Amount: f(250)}}
	got := ComputeWorkOrderTotals(labour, nil, 0, 0, 0)
	if got.TaxTotal != 0 {
		t.Fatalf("expected zero taxTotal at zero rates, got %v", got.TaxTotal)
	}
	if got.Total != 250 {
		t.Fatalf("expected total 250, got %v", got.Total)
	}
}

func TestComputeWorkOrderTotalsNilAmounts(t *testing.T) {
	labour := []LabourEntry{
		{Type: "FIRST HOUR", Hrs: f(2), Rate: f(80)},
		{Type: "ADDITIONAL HOUR", Amount: f(40)},
	}
	materials := []MaterialEntry{{Material: "Fittings"}}

	got := ComputeWorkOrderTotals(labour, materials, 0, 0, 0)
	if got.Subtotal != 40 {
		t.Fatalf("nil amounts must count as zero, got subtotal %v", got.Subtotal)
	}
}

func TestComputeWorkOrderTotalsOrderIndependent(t *testing.T) {
	a := []LabourEntry{
		{Type: "FIRST HOUR", Amount: f(100)},
		{Type: "ADDITIONAL HOUR", Amount: f(60)},
		{Type: "SECOND LABOUR", Amount: f(45.5)},
	}
	b := []LabourEntry{a[2], a[0], a[1]}

	ta := ComputeWorkOrderTotals(a, nil, 5, 7, 10)
	tb := ComputeWorkOrderTotals(b, nil, 5, 7, 10)
	if ta != tb {
		t.Fatalf("totals depend on entry order: %+v vs %+v", ta, tb)
	}
}

func TestComputeWorkOrderBreakdownRows(t *testing.T) {
	labour := []LabourEntry{{Type: "FIRST HOUR", Amount: f(200)}}
	materials := []MaterialEntry{{Material: "Valve", Amount: f(50)}}

	b := ComputeWorkOrderBreakdown(labour, materials, 7, 5, 30)

	if b.LabourSubtotal != 200 || b.MaterialsSubtotal != 50 {
		t.Fatalf("unexpected line subtotals: %+v", b)
	}
	if b.PSTAmount != 14 || b.GSTAmount != 10 {
		t.Fatalf("tax rows must come off the labour subtotal: %+v", b)
	}
	if b.Total != 250+24+30 {
		t.Fatalf("expected total 304, got %v", b.Total)
	}
}

func TestBreakdownDeterministic(t *testing.T) {
	inv := &Invoice{
		Labour:       []LabourEntry{{Type: "FIRST HOUR", Amount: f(123.45)}},
		Materials:    []MaterialEntry{{Material: "Pipe", Amount: f(67.89)}},
		PST:          7,
		GST:          5,
		OtherCharges: 12.5,
	}
	if inv.Breakdown() != inv.Breakdown() {
		t.Fatalf("breakdown must be identical across repeated renders")
	}
}

func TestComputeLineItemTotals(t *testing.T) {
	items := []LineItem{
		{Description: "Service call", Quantity: 2, UnitPrice: 100, TaxRate: 12},
		{Description: "Parts", Quantity: 1, UnitPrice: 50, TaxRate: 0},
	}

	got := ComputeLineItemTotals(items)
	if got.Subtotal != 250 {
		t.Fatalf("expected subtotal 250, got %v", got.Subtotal)
	}
	if got.TaxTotal != 24 {
		t.Fatalf("expected per-item taxTotal 24, got %v", got.TaxTotal)
	}
	if got.Total != 274 {
		t.Fatalf("expected total 274, got %v", got.Total)
	}
}

func TestResolveKindInference(t *testing.T) {
	legacy := &Invoice{LineItems: []LineItem{{Description: "x", Quantity: 1, UnitPrice: 1}}}
	if legacy.ResolveKind() != KindLineItems {
		t.Fatalf("untagged invoice with only line items should resolve to line_items")
	}

	tagged := &Invoice{Kind: KindWorkOrder, LineItems: legacy.LineItems}
	if tagged.ResolveKind() != KindWorkOrder {
		t.Fatalf("explicit kind tag must win over inference")
	}

	empty := &Invoice{}
	if empty.ResolveKind() != KindWorkOrder {
		t.Fatalf("empty invoice should default to work_order")
	}
}

func TestComputeTotalsDispatchesOnKind(t *testing.T) {
	inv := &Invoice{
		Kind:      KindLineItems,
		LineItems: []LineItem{{Description: "x", Quantity: 1, UnitPrice: 100, TaxRate: 5}},
		// Work-order fields that must be ignored for a legacy invoice
		Labour:       []LabourEntry{{Type: "FIRST HOUR", Amount: f(999)}},
		OtherCharges: 40,
	}
	inv.ComputeTotals()
	if inv.Subtotal != 100 || inv.TaxTotal != 5 || inv.Total != 105 {
		t.Fatalf("legacy invoice must use line-item arithmetic: %v / %v / %v",
			inv.Subtotal, inv.TaxTotal, inv.Total)
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	if got := GenerateInvoiceNumber(0); got != "INV-000001" {
		t.Fatalf("expected INV-000001, got %q", got)
	}
	if got := GenerateInvoiceNumber(41); got != "INV-000042" {
		t.Fatalf("expected INV-000042, got %q", got)
	}
}

func TestInvoicePDFFileName(t *testing.T) {
	if got := InvoicePDFFileName("INV-000007"); got != "invoice-INV-000007.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses {
		if !IsValidStatus(s) {
			t.Fatalf("status %q should be valid", s)
		}
	}
	if IsValidStatus("archived") {
		t.Fatalf("unknown status should be rejected")
	}
}

func TestEffectiveTerms(t *testing.T) {
	settings := &Setting{TermsAndConditions: "default terms"}

	inv := &Invoice{Terms: "own terms"}
	if got := inv.EffectiveTerms(settings); got != "own terms" {
		t.Fatalf("invoice terms must win, got %q", got)
	}

	inv.Terms = ""
	if got := inv.EffectiveTerms(settings); got != "default terms" {
		t.Fatalf("expected settings fallback, got %q", got)
	}
	if got := inv.EffectiveTerms(nil); got != "" {
		t.Fatalf("expected empty terms without settings, got %q", got)
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	base := func() *Invoice {
		return &Invoice{
			ClientID:  1,
			IssueDate: time.Now(),
			DueDate:   time.Now().AddDate(0, 0, 30),
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("minimal invoice should validate: %v", err)
	}

	inv := base()
	inv.ClientID = 0
	if err := inv.Validate(); err == nil {
		t.Fatalf("missing client must be rejected")
	}

	inv = base()
	inv.Status = "archived"
	if err := inv.Validate(); err == nil {
		t.Fatalf("unknown status must be rejected")
	}

	inv = base()
	inv.JobType = []string{"Weekend"}
	if err := inv.Validate(); err == nil {
		t.Fatalf("job type outside the vocabulary must be rejected")
	}

	inv = base()
	inv.Labour = []LabourEntry{{Type: "THIRD HOUR", Amount: f(10)}}
	if err := inv.Validate(); err == nil {
		t.Fatalf("labour type outside the vocabulary must be rejected")
	}

	inv = base()
	inv.Labour = []LabourEntry{{Type: "FIRST HOUR", Amount: f(-5)}}
	if err := inv.Validate(); err == nil {
		t.Fatalf("negative labour amount must be rejected")
	}

	inv = base()
	inv.Materials = []MaterialEntry{{Qty: f(1), Amount: f(5)}}
	if err := inv.Validate(); err == nil {
		t.Fatalf("material without a name must be rejected")
	}

	inv = base()
	inv.LineItems = []LineItem{{Description: "x", Quantity: 1, UnitPrice: 10, TaxRate: -1}}
	if err := inv.Validate(); err == nil {
		t.Fatalf("negative tax rate must be rejected")
	}
}
