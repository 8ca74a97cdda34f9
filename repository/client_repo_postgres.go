package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tandin2000/invoiceBuilder/models"
)

type PostgresClientRepo struct {
	DB *sql.DB
}

func NewPostgresClientRepo(db *sql.DB) *PostgresClientRepo {
	return &PostgresClientRepo{DB: db}
}

func (r *PostgresClientRepo) CreateClient(client *models.Client) error {
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO clients(name, email, phone, company, tax_id,
			street, city, state, zip_code, country, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`, client.Name, client.Email, client.Phone, client.Company, client.TaxID,
		client.Address.Street, client.Address.City, client.Address.State,
		client.Address.ZipCode, client.Address.Country, client.CreatedAt,
	).Scan(&client.ID)
}

func (r *PostgresClientRepo) GetClients(filters map[string]interface{}, single bool) ([]*models.Client, error) {
	where := []string{}
	args := []interface{}{}
	i := 1
	for k, v := range filters {
		col := ""
		switch k {
		case "id":
			col = "id"
		case "name":
			col = "name"
		case "email":
			col = "email"
		default:
			continue
		}
		where = append(where, fmt.Sprintf("%s=$%d", col, i))
		args = append(args, v)
		i++
	}

	query := `SELECT id, name, email, phone, company, tax_id,
		street, city, state, zip_code, country, created_at, updated_at FROM clients`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name ASC"
	if single {
		query += " LIMIT 1"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Client
	for rows.Next() {
		c := &models.Client{}
		var updatedAt sql.NullTime
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.TaxID,
			&c.Address.Street, &c.Address.City, &c.Address.State,
			&c.Address.ZipCode, &c.Address.Country, &c.CreatedAt, &updatedAt)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			c.UpdatedAt = &updatedAt.Time
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresClientRepo) UpdateClient(client *models.Client) error {
	now := time.Now().UTC()
	client.UpdatedAt = &now

	res, err := r.DB.Exec(`
		UPDATE clients SET name=$1, email=$2, phone=$3, company=$4, tax_id=$5,
			street=$6, city=$7, state=$8, zip_code=$9, country=$10, updated_at=$11
		WHERE id=$12
	`, client.Name, client.Email, client.Phone, client.Company, client.TaxID,
		client.Address.Street, client.Address.City, client.Address.State,
		client.Address.ZipCode, client.Address.Country, client.UpdatedAt, client.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("client not found")
	}
	return nil
}

func (r *PostgresClientRepo) DeleteClient(clientID int64) error {
	res, err := r.DB.Exec(`DELETE FROM clients WHERE id=$1`, clientID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("client not found")
	}
	return nil
}
