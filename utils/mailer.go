package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/tandin2000/invoiceBuilder/models"
)

// SendInvoiceEmail sends one invoice to its client with the rendered PDF
// attached. Failures are surfaced to the caller; there is no retry here.
func SendInvoiceEmail(client *models.Client, invoice *models.Invoice, pdfBytes []byte, companyName string) error {
	if client.Email == "" {
		return errors.New("client has no email address")
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return errors.New("SMTP_HOST not configured")
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}
	if companyName == "" {
		companyName = "Your Company"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", client.Email)
	m.SetHeader("Subject", fmt.Sprintf("Invoice %s from %s", invoice.InvoiceNumber, companyName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nPlease find attached invoice %s.\n\nBest regards,\n%s",
		client.Name, invoice.InvoiceNumber, companyName))
	m.Attach(models.InvoicePDFFileName(invoice.InvoiceNumber),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdfBytes)
			return err
		}))

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	return d.DialAndSend(m)
}
