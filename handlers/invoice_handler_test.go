package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tandin2000/invoiceBuilder/models"
)

// fakeInvoiceRepo is an in-memory InvoiceRepository for handler tests.
type fakeInvoiceRepo struct {
	invoices map[int64]*models.Invoice
	nextID   int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[int64]*models.Invoice), nextID: 1}
}

func (f *fakeInvoiceRepo) CreateInvoice(inv *models.Invoice) error {
	inv.ID = f.nextID
	f.nextID++
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) GetInvoices(filters map[string]interface{}, single bool) ([]*models.Invoice, error) {
	var out []*models.Invoice
	for _, inv := range f.invoices {
		if id, ok := filters["id"]; ok && inv.ID != id.(int64) {
			continue
		}
		if status, ok := filters["status"]; ok && inv.Status != status.(string) {
			continue
		}
		if clientID, ok := filters["clientId"]; ok && inv.ClientID != clientID.(int64) {
			continue
		}
		cp := *inv
		out = append(out, &cp)
		if single {
			break
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) UpdateInvoice(inv *models.Invoice) error {
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) UpdateStatus(invoiceID int64, status string) error {
	f.invoices[invoiceID].Status = status
	return nil
}

func (f *fakeInvoiceRepo) SetPDFURL(invoiceID int64, pdfURL string) error {
	f.invoices[invoiceID].PdfURL = pdfURL
	return nil
}

func (f *fakeInvoiceRepo) DeleteInvoice(invoiceID int64) error {
	delete(f.invoices, invoiceID)
	return nil
}

func (f *fakeInvoiceRepo) CountInvoices() (int64, error) {
	return int64(len(f.invoices)), nil
}

func createPayload() string {
	return `{
		"clientId": 1,
		"issueDate": "2024-03-01T00:00:00Z",
		"dueDate": "2024-03-31T00:00:00Z",
		"labour": [{"notes": "Fix leak", "type": "FIRST HOUR", "hrs": 1, "rate": 100, "amount": 100}],
		"materials": [{"qty": 1, "material": "Washer", "amount": 500}],
		"pst": 5,
		"gst": 7,
		"subtotal": 9999,
		"total": 9999
	}`
}

func TestCreateInvoiceAssignsNumberAndTotals(t *testing.T) {
	h := &InvoiceHandler{Repo: newFakeInvoiceRepo()}

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(createPayload()))
	w := httptest.NewRecorder()
	h.CreateInvoice(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var inv models.Invoice
	if err := json.NewDecoder(w.Body).Decode(&inv); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if inv.InvoiceNumber != "INV-000001" {
		t.Fatalf("expected INV-000001, got %q", inv.InvoiceNumber)
	}
	if inv.Status != "draft" {
		t.Fatalf("expected default draft status, got %q", inv.Status)
	}
	// Payload totals must be ignored and recomputed
	if inv.Subtotal != 600 || inv.TaxTotal != 12 || inv.Total != 612 {
		t.Fatalf("totals not recomputed: %v / %v / %v", inv.Subtotal, inv.TaxTotal, inv.Total)
	}
}

func TestCreateInvoiceRejectsInvalid(t *testing.T) {
	h := &InvoiceHandler{Repo: newFakeInvoiceRepo()}

	req := httptest.NewRequest(http.MethodPost, "/api/invoices",
		strings.NewReader(`{"issueDate": "2024-03-01T00:00:00Z", "dueDate": "2024-03-31T00:00:00Z"}`))
	w := httptest.NewRecorder()
	h.CreateInvoice(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("invoice without client must be rejected, got %d", w.Code)
	}
}

func TestGetInvoiceByIDNotFound(t *testing.T) {
	h := &InvoiceHandler{Repo: newFakeInvoiceRepo()}

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/99", nil)
	w := httptest.NewRecorder()
	h.GetInvoiceByID(w, req, "99")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateInvoicePreservesNumber(t *testing.T) {
	repo := newFakeInvoiceRepo()
	h := &InvoiceHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(createPayload()))
	h.CreateInvoice(httptest.NewRecorder(), req)

	update := `{
		"clientId": 1,
		"invoiceNumber": "INV-HACKED",
		"issueDate": "2024-03-01T00:00:00Z",
		"dueDate": "2024-04-30T00:00:00Z",
		"labour": [{"type": "FIRST HOUR", "amount": 200}],
		"pst": 5,
		"gst": 7
	}`
	req = httptest.NewRequest(http.MethodPut, "/api/invoices/1", strings.NewReader(update))
	w := httptest.NewRecorder()
	h.UpdateInvoice(w, req, "1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var inv models.Invoice
	if err := json.NewDecoder(w.Body).Decode(&inv); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if inv.InvoiceNumber != "INV-000001" {
		t.Fatalf("invoice number must be immutable, got %q", inv.InvoiceNumber)
	}
	if inv.Subtotal != 200 || inv.Total != 224 {
		t.Fatalf("totals not recomputed on update: %v / %v", inv.Subtotal, inv.Total)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	repo := newFakeInvoiceRepo()
	h := &InvoiceHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(createPayload()))
	h.CreateInvoice(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPatch, "/api/invoices/1/status",
		strings.NewReader(`{"status": "archived"}`))
	w := httptest.NewRecorder()
	h.UpdateStatus(w, req, "1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown status must be rejected, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPatch, "/api/invoices/1/status",
		strings.NewReader(`{"status": "paid"}`))
	w = httptest.NewRecorder()
	h.UpdateStatus(w, req, "1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.invoices[1].Status != "paid" {
		t.Fatalf("status not persisted, got %q", repo.invoices[1].Status)
	}
}

func TestDeleteInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo()
	h := &InvoiceHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(createPayload()))
	h.CreateInvoice(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodDelete, "/api/invoices/1", nil)
	w := httptest.NewRecorder()
	h.DeleteInvoice(w, req, "1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(repo.invoices) != 0 {
		t.Fatalf("invoice not deleted")
	}

	var resp ApiResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success response")
	}

	w = httptest.NewRecorder()
	h.DeleteInvoice(w, httptest.NewRequest(http.MethodDelete, "/api/invoices/1", nil), "1")
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleting a missing invoice should 404, got %d", w.Code)
	}
}

func TestGetAllInvoicesFilters(t *testing.T) {
	repo := newFakeInvoiceRepo()
	h := &InvoiceHandler{Repo: repo}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(createPayload()))
		h.CreateInvoice(httptest.NewRecorder(), req)
	}
	repo.invoices[2].Status = "paid"

	req := httptest.NewRequest(http.MethodGet, "/api/invoices?status=paid", nil)
	w := httptest.NewRecorder()
	h.GetAllInvoices(w, req)

	var list []*models.Invoice
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 1 || list[0].Status != "paid" {
		t.Fatalf("status filter not applied: %d results", len(list))
	}

	// Empty result must be an array, not null
	req = httptest.NewRequest(http.MethodGet, "/api/invoices?status=overdue", nil)
	w = httptest.NewRecorder()
	h.GetAllInvoices(w, req)
	if !bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("[")) {
		t.Fatalf("empty list must serialize as [], got %s", w.Body.String())
	}
}
