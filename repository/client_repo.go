package repository

import (
	"github.com/tandin2000/invoiceBuilder/models"
)

type ClientRepository interface {
	CreateClient(client *models.Client) error
	GetClients(filters map[string]interface{}, single bool) ([]*models.Client, error)
	UpdateClient(client *models.Client) error
	DeleteClient(clientID int64) error
}
