package repository

import (
	"database/sql"
	"time"

	"github.com/tandin2000/invoiceBuilder/models"
)

type PostgresSettingRepo struct {
	DB *sql.DB
}

func NewPostgresSettingRepo(db *sql.DB) *PostgresSettingRepo {
	return &PostgresSettingRepo{DB: db}
}

// SaveSettings inserts or updates the singleton company settings row
func (r *PostgresSettingRepo) SaveSettings(settings *models.Setting) error {
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = time.Now().UTC()
	}
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	if settings.ID == 0 {
		existing, err := r.GetSettings()
		if err != nil {
			return err
		}
		if existing != nil {
			settings.ID = existing.ID
			settings.CreatedAt = existing.CreatedAt
		}
	}

	if settings.ID > 0 {
		_, err := r.DB.Exec(`
			UPDATE settings SET company_name=$1, address=$2,
				terms_and_conditions=$3, signature=$4, updated_at=$5
			WHERE id=$6
		`, settings.CompanyName, settings.Address,
			settings.TermsAndConditions, settings.Signature, settings.UpdatedAt, settings.ID)
		return err
	}

	return r.DB.QueryRow(`
		INSERT INTO settings(company_name, address, terms_and_conditions, signature, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, settings.CompanyName, settings.Address, settings.TermsAndConditions,
		settings.Signature, settings.CreatedAt, settings.UpdatedAt,
	).Scan(&settings.ID)
}

// GetSettings fetches the latest settings row, nil when absent
func (r *PostgresSettingRepo) GetSettings() (*models.Setting, error) {
	settings := &models.Setting{}
	var updatedAt sql.NullTime

	err := r.DB.QueryRow(`
		SELECT id, company_name, address, terms_and_conditions, signature, created_at, updated_at
		FROM settings
		ORDER BY id DESC LIMIT 1
	`).Scan(&settings.ID, &settings.CompanyName, &settings.Address,
		&settings.TermsAndConditions, &settings.Signature, &settings.CreatedAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if updatedAt.Valid {
		settings.UpdatedAt = &updatedAt.Time
	}
	return settings, nil
}
