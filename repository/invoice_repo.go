package repository

import (
	"github.com/tandin2000/invoiceBuilder/models"
)

type InvoiceRepository interface {
	CreateInvoice(inv *models.Invoice) error
	GetInvoices(filters map[string]interface{}, single bool) ([]*models.Invoice, error)
	UpdateInvoice(inv *models.Invoice) error
	UpdateStatus(invoiceID int64, status string) error
	SetPDFURL(invoiceID int64, pdfURL string) error
	DeleteInvoice(invoiceID int64) error
	CountInvoices() (int64, error)
}
