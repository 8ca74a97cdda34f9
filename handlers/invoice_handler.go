package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/tandin2000/invoiceBuilder/models"
	"github.com/tandin2000/invoiceBuilder/repository"
	"github.com/tandin2000/invoiceBuilder/utils"
)

type InvoiceHandler struct {
	Repo repository.InvoiceRepository
}

// CreateInvoice assigns the next sequential invoice number and recomputes
// the derived totals before persisting. Totals from the payload are ignored.
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var invoice models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := invoice.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	count, err := h.Repo.CountInvoices()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	invoice.ID = 0
	invoice.InvoiceNumber = models.GenerateInvoiceNumber(count)
	if invoice.Status == "" {
		invoice.Status = "draft"
	}
	invoice.PdfURL = ""
	invoice.ComputeTotals()

	if err := h.Repo.CreateInvoice(&invoice); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, invoice)
}

// GetAllInvoices handler
func (h *InvoiceHandler) GetAllInvoices(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	q := r.URL.Query()
	if status := q.Get("status"); status != "" {
		filters["status"] = status
	}
	if clientID := q.Get("clientId"); clientID != "" {
		if id, err := strconv.ParseInt(clientID, 10, 64); err == nil {
			filters["clientId"] = id
		}
	}

	list, err := h.Repo.GetInvoices(filters, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Invoice{}
	}

	writeJSON(w, http.StatusOK, list)
}

// GetInvoiceByID handler
func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request, id string) {
	invoiceID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.GetInvoices(map[string]interface{}{"id": invoiceID}, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, list[0])
}

// UpdateInvoice rewrites the invoice fields from the payload, keeping the
// immutable invoice number, and recomputes totals before persisting.
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request, id string) {
	invoiceID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	existing, err := h.Repo.GetInvoices(map[string]interface{}{"id": invoiceID}, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(existing) == 0 {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}
	current := existing[0]

	var invoice models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	invoice.ID = current.ID
	invoice.InvoiceNumber = current.InvoiceNumber
	invoice.CreatedAt = current.CreatedAt
	invoice.PdfURL = current.PdfURL
	if invoice.Status == "" {
		invoice.Status = current.Status
	}

	if err := invoice.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	invoice.ComputeTotals()

	if err := h.Repo.UpdateInvoice(&invoice); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Return the updated invoice with its client populated
	list, err := h.Repo.GetInvoices(map[string]interface{}{"id": invoiceID}, true)
	if err != nil || len(list) == 0 {
		writeJSON(w, http.StatusOK, invoice)
		return
	}
	writeJSON(w, http.StatusOK, list[0])
}

// DeleteInvoice removes the invoice and its stored PDF artifact
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request, id string) {
	invoiceID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.GetInvoices(map[string]interface{}{"id": invoiceID}, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}
	invoice := list[0]

	if err := h.Repo.DeleteInvoice(invoiceID); err != nil {
		http.Error(w, "failed to delete invoice: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if invoice.PdfURL != "" {
		utils.DeleteInvoicePDF(models.InvoicePDFFileName(invoice.InvoiceNumber))
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Invoice deleted successfully",
	})
}

// UpdateStatus sets the invoice status; any status may move to any other
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	invoiceID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidStatus(payload.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.GetInvoices(map[string]interface{}{"id": invoiceID}, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}

	if err := h.Repo.UpdateStatus(invoiceID, payload.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.GetLogger().Info("invoice status updated",
		zap.Int64("invoiceId", invoiceID), zap.String("status", payload.Status))

	invoice := list[0]
	invoice.Status = payload.Status
	writeJSON(w, http.StatusOK, invoice)
}
