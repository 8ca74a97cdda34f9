package models

import (
	"errors"
	"fmt"
	"time"
)

type InvoiceKind string

const (
	KindWorkOrder InvoiceKind = "work_order"
	KindLineItems InvoiceKind = "line_items"
)

// Invoice statuses. Any status may be changed to any other; there is no
// enforced transition graph.
var ValidStatuses = []string{"draft", "sent", "paid", "overdue", "cancel"}

// JobTypes is the fixed vocabulary rendered as the 3x2 checkbox grid.
var JobTypes = []string{"Day Work", "Contract", "Extra", "Overtime", "Other", "Emergency Call"}

// LabourTypes is the fixed vocabulary for labour entries.
var LabourTypes = []string{"FIRST HOUR", "ADDITIONAL HOUR", "SECOND LABOUR"}

type LabourEntry struct {
	Notes  string   `json:"notes" bson:"notes"`
	Type   string   `json:"type" bson:"type"`
	Hrs    *float64 `json:"hrs,omitempty" bson:"hrs,omitempty"`
	Rate   *float64 `json:"rate,omitempty" bson:"rate,omitempty"`
	Amount *float64 `json:"amount,omitempty" bson:"amount,omitempty"`
}

type MaterialEntry struct {
	Qty      *float64 `json:"qty,omitempty" bson:"qty,omitempty"`
	Material string   `json:"material" bson:"material"`
	Amount   *float64 `json:"amount,omitempty" bson:"amount,omitempty"`
}

// LineItem is the legacy invoice shape kept for invoices created before the
// labour/materials work-order form.
type LineItem struct {
	Description string  `json:"description" bson:"description"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
	TaxRate     float64 `json:"taxRate" bson:"taxRate"`
}

type Invoice struct {
	ID            int64       `json:"id" bson:"_id,omitempty"`
	InvoiceNumber string      `json:"invoiceNumber" bson:"invoiceNumber"`
	Kind          InvoiceKind `json:"kind,omitempty" bson:"kind,omitempty"`
	ClientID      int64       `json:"clientId" bson:"clientId"`
	IssueDate     time.Time   `json:"issueDate" bson:"issueDate"`
	DueDate       time.Time   `json:"dueDate" bson:"dueDate"`
	Status        string      `json:"status" bson:"status"`

	JobLocation       string     `json:"jobLocation,omitempty" bson:"jobLocation,omitempty"`
	JobDate           *time.Time `json:"jobDate,omitempty" bson:"jobDate,omitempty"`
	JobStart          *time.Time `json:"jobStart,omitempty" bson:"jobStart,omitempty"`
	JobFinish         *time.Time `json:"jobFinish,omitempty" bson:"jobFinish,omitempty"`
	CustomerEmail     string     `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	CustomerNumber    string     `json:"customerNumber,omitempty" bson:"customerNumber,omitempty"`
	JobType           []string   `json:"jobType,omitempty" bson:"jobType,omitempty"`
	DescriptionOfWork string     `json:"descriptionOfWork,omitempty" bson:"descriptionOfWork,omitempty"`
	WorkOrderedBy     string     `json:"workOrderedBy,omitempty" bson:"workOrderedBy,omitempty"`
	FooterNote        string     `json:"footerNote,omitempty" bson:"footerNote,omitempty"`

	Labour    []LabourEntry   `json:"labour,omitempty" bson:"labour,omitempty"`
	Materials []MaterialEntry `json:"materials,omitempty" bson:"materials,omitempty"`
	LineItems []LineItem      `json:"lineItems,omitempty" bson:"lineItems,omitempty"`

	PST          float64 `json:"pst" bson:"pst"`
	GST          float64 `json:"gst" bson:"gst"`
	OtherCharges float64 `json:"otherCharges" bson:"otherCharges"`

	// Derived fields, recomputed before every persist. Never trusted from
	// request payloads.
	Subtotal float64 `json:"subtotal" bson:"subtotal"`
	TaxTotal float64 `json:"taxTotal" bson:"taxTotal"`
	Total    float64 `json:"total" bson:"total"`

	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`
	Terms  string `json:"terms,omitempty" bson:"terms,omitempty"`
	PdfURL string `json:"pdfUrl,omitempty" bson:"pdfUrl,omitempty"`

	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`

	// Populated for responses and PDF rendering (denormalized)
	Client *Client `json:"client,omitempty" bson:"-"`
}

// DefaultFooterNote is printed when the invoice has no footer note of its own.
const DefaultFooterNote = "THANK YOU FOR THE BUSINESS"

// GenerateInvoiceNumber derives the next sequential invoice number from the
// current invoice count.
func GenerateInvoiceNumber(count int64) string {
	return fmt.Sprintf("INV-%06d", count+1)
}

// InvoicePDFFileName is the derived artifact name for an invoice's PDF.
func InvoicePDFFileName(invoiceNumber string) string {
	return fmt.Sprintf("invoice-%s.pdf", invoiceNumber)
}

type Totals struct {
	Subtotal float64
	TaxTotal float64
	Total    float64
}

// TotalsBreakdown carries the per-row values of the printed totals table.
type TotalsBreakdown struct {
	LabourSubtotal    float64
	MaterialsSubtotal float64
	Subtotal          float64
	PSTAmount         float64
	GSTAmount         float64
	OtherCharges      float64
	TaxTotal          float64
	Total             float64
}

func amountOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ComputeWorkOrderTotals sums labour and material amounts. PST and GST are
// percentages applied to the labour subtotal only; materials are never taxed.
func ComputeWorkOrderTotals(labour []LabourEntry, materials []MaterialEntry, pst, gst, otherCharges float64) Totals {
	b := ComputeWorkOrderBreakdown(labour, materials, pst, gst, otherCharges)
	return Totals{Subtotal: b.Subtotal, TaxTotal: b.TaxTotal, Total: b.Total}
}

// ComputeWorkOrderBreakdown is ComputeWorkOrderTotals with every intermediate
// value exposed, for the totals table on the printed document.
func ComputeWorkOrderBreakdown(labour []LabourEntry, materials []MaterialEntry, pst, gst, otherCharges float64) TotalsBreakdown {
	var b TotalsBreakdown
	for _, l := range labour {
		b.LabourSubtotal += amountOf(l.Amount)
	}
	for _, m := range materials {
		b.MaterialsSubtotal += amountOf(m.Amount)
	}
	b.Subtotal = b.LabourSubtotal + b.MaterialsSubtotal
	b.PSTAmount = b.LabourSubtotal * pst / 100
	b.GSTAmount = b.LabourSubtotal * gst / 100
	b.TaxTotal = b.PSTAmount + b.GSTAmount
	b.OtherCharges = otherCharges
	b.Total = b.Subtotal + b.TaxTotal + otherCharges
	return b
}

// ComputeLineItemTotals implements the legacy per-item tax model:
// each line is taxed at its own rate, and there are no other charges.
func ComputeLineItemTotals(items []LineItem) Totals {
	var t Totals
	for _, it := range items {
		line := it.Quantity * it.UnitPrice
		t.Subtotal += line
		t.TaxTotal += line * it.TaxRate / 100
	}
	t.Total = t.Subtotal + t.TaxTotal
	return t
}

// ResolveKind returns the invoice's kind, inferring it for documents stored
// before the kind tag existed.
func (inv *Invoice) ResolveKind() InvoiceKind {
	if inv.Kind == KindWorkOrder || inv.Kind == KindLineItems {
		return inv.Kind
	}
	if len(inv.LineItems) > 0 && len(inv.Labour) == 0 && len(inv.Materials) == 0 {
		return KindLineItems
	}
	return KindWorkOrder
}

// ComputeTotals overwrites the derived subtotal/taxTotal/total fields from
// the invoice's line collections. Called before every persist.
func (inv *Invoice) ComputeTotals() {
	var t Totals
	switch inv.ResolveKind() {
	case KindLineItems:
		t = ComputeLineItemTotals(inv.LineItems)
	default:
		t = ComputeWorkOrderTotals(inv.Labour, inv.Materials, inv.PST, inv.GST, inv.OtherCharges)
	}
	inv.Subtotal = t.Subtotal
	inv.TaxTotal = t.TaxTotal
	inv.Total = t.Total
}

// Breakdown returns the totals-table rows for the renderer, derived from the
// same arithmetic as ComputeTotals.
func (inv *Invoice) Breakdown() TotalsBreakdown {
	return ComputeWorkOrderBreakdown(inv.Labour, inv.Materials, inv.PST, inv.GST, inv.OtherCharges)
}

// EffectiveTerms picks the invoice's own terms over the settings default.
func (inv *Invoice) EffectiveTerms(settings *Setting) string {
	if inv.Terms != "" {
		return inv.Terms
	}
	if settings != nil {
		return settings.TermsAndConditions
	}
	return ""
}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func isValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if jt == t {
			return true
		}
	}
	return false
}

func isValidLabourType(t string) bool {
	for _, lt := range LabourTypes {
		if lt == t {
			return true
		}
	}
	return false
}

// Validate checks the request-boundary shape rules. Derived totals are not
// validated here since they are always recomputed.
func (inv *Invoice) Validate() error {
	if inv.ClientID == 0 {
		return errors.New("valid client ID is required")
	}
	if inv.IssueDate.IsZero() {
		return errors.New("valid issue date is required")
	}
	if inv.DueDate.IsZero() {
		return errors.New("valid due date is required")
	}
	if inv.Status != "" && !IsValidStatus(inv.Status) {
		return fmt.Errorf("invalid status %q", inv.Status)
	}
	for _, jt := range inv.JobType {
		if !isValidJobType(jt) {
			return fmt.Errorf("invalid job type %q", jt)
		}
	}
	for i, l := range inv.Labour {
		if l.Type == "" {
			return fmt.Errorf("labour[%d]: type is required", i)
		}
		if !isValidLabourType(l.Type) {
			return fmt.Errorf("labour[%d]: invalid type %q", i, l.Type)
		}
		if amountOf(l.Hrs) < 0 || amountOf(l.Rate) < 0 || amountOf(l.Amount) < 0 {
			return fmt.Errorf("labour[%d]: hours, rate and amount must be positive", i)
		}
	}
	for i, m := range inv.Materials {
		if m.Material == "" {
			return fmt.Errorf("materials[%d]: material name is required", i)
		}
		if amountOf(m.Qty) < 0 || amountOf(m.Amount) < 0 {
			return fmt.Errorf("materials[%d]: quantity and amount must be positive", i)
		}
	}
	for i, it := range inv.LineItems {
		if it.Description == "" {
			return fmt.Errorf("lineItems[%d]: description is required", i)
		}
		if it.Quantity < 0 || it.UnitPrice < 0 || it.TaxRate < 0 {
			return fmt.Errorf("lineItems[%d]: quantity, unit price and tax rate must be positive", i)
		}
	}
	return nil
}
