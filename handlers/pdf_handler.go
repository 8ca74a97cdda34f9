package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/tandin2000/invoiceBuilder/models"
	"github.com/tandin2000/invoiceBuilder/repository"
	"github.com/tandin2000/invoiceBuilder/utils"
)

type PDFHandler struct {
	Repo *repository.PDFRepository
}

// renderInvoice fetches the invoice with its client and the settings
// singleton, recomputes totals, and renders the document. Settings absence
// is tolerated; a missing client is fatal.
func (h *PDFHandler) renderInvoice(invoiceID int64) (*models.Invoice, []byte, error) {
	invoice, err := h.Repo.GetInvoiceForPDF(invoiceID)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, nil
	}
	if invoice.Client == nil {
		return nil, nil, fmt.Errorf("invoice %s has no client", invoice.InvoiceNumber)
	}

	settings, err := h.Repo.GetSettingsForPDF()
	if err != nil {
		return nil, nil, err
	}

	invoice.ComputeTotals()
	pdfBytes, err := utils.GenerateInvoicePDF(invoice, invoice.Client, settings)
	if err != nil {
		return nil, nil, err
	}
	return invoice, pdfBytes, nil
}

// DownloadInvoicePDF regenerates the invoice PDF, stores it at its derived
// path, and streams it back
func (h *PDFHandler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request, id string) {
	invoiceID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	invoice, pdfBytes, err := h.renderInvoice(invoiceID)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if invoice == nil {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}

	fileName := models.InvoicePDFFileName(invoice.InvoiceNumber)
	fileURL, err := utils.SaveInvoicePDF(pdfBytes, fileName)
	if err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// pdfUrl is only recorded after a successful render and store
	if invoice.PdfURL == "" {
		if err := h.Repo.InvoiceRepo.SetPDFURL(invoiceID, fileURL); err != nil {
			utils.GetLogger().Warn("failed to record pdfUrl",
				zap.Int64("invoiceId", invoiceID), zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// SendInvoice regenerates the PDF, stores it, marks the invoice sent, and
// emails it to the client with the PDF attached
func (h *PDFHandler) SendInvoice(w http.ResponseWriter, r *http.Request, id string) {
	invoiceID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	invoice, pdfBytes, err := h.renderInvoice(invoiceID)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if invoice == nil {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}

	fileName := models.InvoicePDFFileName(invoice.InvoiceNumber)
	fileURL, err := utils.SaveInvoicePDF(pdfBytes, fileName)
	if err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Invoice state is only mutated after the render and store succeeded
	if err := h.Repo.InvoiceRepo.SetPDFURL(invoiceID, fileURL); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := h.Repo.InvoiceRepo.UpdateStatus(invoiceID, "sent"); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	companyName := ""
	if settings, err := h.Repo.GetSettingsForPDF(); err == nil && settings != nil {
		companyName = settings.CompanyName
	}
	if err := utils.SendInvoiceEmail(invoice.Client, invoice, pdfBytes, companyName); err != nil {
		http.Error(w, "failed to send email: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.GetLogger().Info("invoice sent",
		zap.String("invoiceNumber", invoice.InvoiceNumber),
		zap.String("to", invoice.Client.Email))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Invoice sent successfully",
		"pdfUrl":  fileURL,
	})
}
