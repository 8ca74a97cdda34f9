package repository

import (
	"github.com/tandin2000/invoiceBuilder/models"
)

// SettingRepository manages the singleton company settings record.
// GetSettings returns (nil, nil) when none has been saved yet.
type SettingRepository interface {
	SaveSettings(settings *models.Setting) error
	GetSettings() (*models.Setting, error)
}
