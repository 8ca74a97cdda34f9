package repository

import (
	"github.com/tandin2000/invoiceBuilder/models"
)

// PDFRepository provides methods to fetch data for PDF generation
type PDFRepository struct {
	InvoiceRepo InvoiceRepository
	ClientRepo  ClientRepository
	SettingRepo SettingRepository
}

// NewPDFRepository initializes a PDF repository
func NewPDFRepository(invoiceRepo InvoiceRepository, clientRepo ClientRepository, settingRepo SettingRepository) *PDFRepository {
	return &PDFRepository{
		InvoiceRepo: invoiceRepo,
		ClientRepo:  clientRepo,
		SettingRepo: settingRepo,
	}
}

// GetInvoiceForPDF fetches a single invoice by ID with its client populated
func (r *PDFRepository) GetInvoiceForPDF(id int64) (*models.Invoice, error) {
	invoices, err := r.InvoiceRepo.GetInvoices(map[string]interface{}{"id": id}, true)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, nil
	}
	return invoices[0], nil
}

// GetSettingsForPDF fetches the singleton company settings, nil when absent
func (r *PDFRepository) GetSettingsForPDF() (*models.Setting, error) {
	return r.SettingRepo.GetSettings()
}
