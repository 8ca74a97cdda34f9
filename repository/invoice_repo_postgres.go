package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tandin2000/invoiceBuilder/models"
)

type PostgresInvoiceRepo struct {
	DB *sql.DB
}

func NewPostgresInvoiceRepo(db *sql.DB) *PostgresInvoiceRepo {
	return &PostgresInvoiceRepo{DB: db}
}

const invoiceColumns = `
	id, invoice_number, kind, client_id, issue_date, due_date, status,
	job_location, job_date, job_start, job_finish, customer_email, customer_number,
	job_type, description_of_work, work_ordered_by, footer_note,
	labour, materials, line_items,
	pst, gst, other_charges, subtotal, tax_total, total,
	notes, terms, pdf_url, created_at, updated_at`

// CreateInvoice inserts an invoice; line collections are stored as JSONB
func (r *PostgresInvoiceRepo) CreateInvoice(inv *models.Invoice) error {
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	jobTypeJSON, labourJSON, materialsJSON, lineItemsJSON, err := marshalInvoiceJSON(inv)
	if err != nil {
		return err
	}

	return r.DB.QueryRow(`
		INSERT INTO invoices(
			invoice_number, kind, client_id, issue_date, due_date, status,
			job_location, job_date, job_start, job_finish, customer_email, customer_number,
			job_type, description_of_work, work_ordered_by, footer_note,
			labour, materials, line_items,
			pst, gst, other_charges, subtotal, tax_total, total,
			notes, terms, pdf_url, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,
			$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)
		RETURNING id
	`, inv.InvoiceNumber, string(inv.Kind), inv.ClientID, inv.IssueDate, inv.DueDate, inv.Status,
		inv.JobLocation, inv.JobDate, inv.JobStart, inv.JobFinish, inv.CustomerEmail, inv.CustomerNumber,
		jobTypeJSON, inv.DescriptionOfWork, inv.WorkOrderedBy, inv.FooterNote,
		labourJSON, materialsJSON, lineItemsJSON,
		inv.PST, inv.GST, inv.OtherCharges, inv.Subtotal, inv.TaxTotal, inv.Total,
		inv.Notes, inv.Terms, inv.PdfURL, inv.CreatedAt,
	).Scan(&inv.ID)
}

// GetInvoices fetches invoices; single=true fetches one record
func (r *PostgresInvoiceRepo) GetInvoices(filters map[string]interface{}, single bool) ([]*models.Invoice, error) {
	where := []string{}
	args := []interface{}{}
	i := 1
	for k, v := range filters {
		col := ""
		switch k {
		case "id":
			col = "id"
		case "status":
			col = "status"
		case "clientId", "client_id":
			col = "client_id"
		case "invoiceNumber", "invoice_number":
			col = "invoice_number"
		default:
			continue
		}
		where = append(where, fmt.Sprintf("%s=$%d", col, i))
		args = append(args, v)
		i++
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if single {
		query += " LIMIT 1"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		r.populateClient(inv)
		out = append(out, inv)
	}
	return out, rows.Err()
}

// UpdateInvoice rewrites all mutable invoice fields
func (r *PostgresInvoiceRepo) UpdateInvoice(inv *models.Invoice) error {
	jobTypeJSON, labourJSON, materialsJSON, lineItemsJSON, err := marshalInvoiceJSON(inv)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	inv.UpdatedAt = &now

	res, err := r.DB.Exec(`
		UPDATE invoices SET
			kind=$1, client_id=$2, issue_date=$3, due_date=$4, status=$5,
			job_location=$6, job_date=$7, job_start=$8, job_finish=$9,
			customer_email=$10, customer_number=$11, job_type=$12,
			description_of_work=$13, work_ordered_by=$14, footer_note=$15,
			labour=$16, materials=$17, line_items=$18,
			pst=$19, gst=$20, other_charges=$21, subtotal=$22, tax_total=$23, total=$24,
			notes=$25, terms=$26, pdf_url=$27, updated_at=$28
		WHERE id=$29
	`, string(inv.Kind), inv.ClientID, inv.IssueDate, inv.DueDate, inv.Status,
		inv.JobLocation, inv.JobDate, inv.JobStart, inv.JobFinish,
		inv.CustomerEmail, inv.CustomerNumber, jobTypeJSON,
		inv.DescriptionOfWork, inv.WorkOrderedBy, inv.FooterNote,
		labourJSON, materialsJSON, lineItemsJSON,
		inv.PST, inv.GST, inv.OtherCharges, inv.Subtotal, inv.TaxTotal, inv.Total,
		inv.Notes, inv.Terms, inv.PdfURL, inv.UpdatedAt, inv.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

func (r *PostgresInvoiceRepo) UpdateStatus(invoiceID int64, status string) error {
	_, err := r.DB.Exec(`UPDATE invoices SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now().UTC(), invoiceID)
	return err
}

func (r *PostgresInvoiceRepo) SetPDFURL(invoiceID int64, pdfURL string) error {
	_, err := r.DB.Exec(`UPDATE invoices SET pdf_url=$1, updated_at=$2 WHERE id=$3`,
		pdfURL, time.Now().UTC(), invoiceID)
	return err
}

func (r *PostgresInvoiceRepo) DeleteInvoice(invoiceID int64) error {
	res, err := r.DB.Exec(`DELETE FROM invoices WHERE id=$1`, invoiceID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

func (r *PostgresInvoiceRepo) CountInvoices() (int64, error) {
	var count int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM invoices`).Scan(&count)
	return count, err
}

// ------------------------ Helper Functions ------------------------

func marshalInvoiceJSON(inv *models.Invoice) (jobType, labour, materials, lineItems []byte, err error) {
	if jobType, err = json.Marshal(inv.JobType); err != nil {
		return
	}
	if labour, err = json.Marshal(inv.Labour); err != nil {
		return
	}
	if materials, err = json.Marshal(inv.Materials); err != nil {
		return
	}
	lineItems, err = json.Marshal(inv.LineItems)
	return
}

func scanInvoice(rows *sql.Rows) (*models.Invoice, error) {
	inv := &models.Invoice{}
	var (
		kind                                    string
		jobDate, jobStart, jobFinish, updatedAt sql.NullTime
		jobTypeJSON                             []byte
		labourJSON, materialsJSON, itemsJSON    []byte
	)

	err := rows.Scan(
		&inv.ID, &inv.InvoiceNumber, &kind, &inv.ClientID, &inv.IssueDate, &inv.DueDate, &inv.Status,
		&inv.JobLocation, &jobDate, &jobStart, &jobFinish, &inv.CustomerEmail, &inv.CustomerNumber,
		&jobTypeJSON, &inv.DescriptionOfWork, &inv.WorkOrderedBy, &inv.FooterNote,
		&labourJSON, &materialsJSON, &itemsJSON,
		&inv.PST, &inv.GST, &inv.OtherCharges, &inv.Subtotal, &inv.TaxTotal, &inv.Total,
		&inv.Notes, &inv.Terms, &inv.PdfURL, &inv.CreatedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	inv.Kind = models.InvoiceKind(kind)
	if jobDate.Valid {
		inv.JobDate = &jobDate.Time
	}
	if jobStart.Valid {
		inv.JobStart = &jobStart.Time
	}
	if jobFinish.Valid {
		inv.JobFinish = &jobFinish.Time
	}
	if updatedAt.Valid {
		inv.UpdatedAt = &updatedAt.Time
	}
	if len(jobTypeJSON) > 0 {
		if err := json.Unmarshal(jobTypeJSON, &inv.JobType); err != nil {
			return nil, err
		}
	}
	if len(labourJSON) > 0 {
		if err := json.Unmarshal(labourJSON, &inv.Labour); err != nil {
			return nil, err
		}
	}
	if len(materialsJSON) > 0 {
		if err := json.Unmarshal(materialsJSON, &inv.Materials); err != nil {
			return nil, err
		}
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &inv.LineItems); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// populateClient loads the referenced client row onto the invoice
func (r *PostgresInvoiceRepo) populateClient(inv *models.Invoice) {
	if inv.ClientID == 0 {
		return
	}
	clients, err := NewPostgresClientRepo(r.DB).GetClients(map[string]interface{}{"id": inv.ClientID}, true)
	if err == nil && len(clients) > 0 {
		inv.Client = clients[0]
	}
}
