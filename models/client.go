package models

import (
	"errors"
	"time"
)

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

// Client is reference data consumed read-only by invoice rendering.
type Client struct {
	ID        int64      `json:"id" bson:"_id,omitempty"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Company   string     `json:"company,omitempty" bson:"company,omitempty"`
	TaxID     string     `json:"taxId,omitempty" bson:"taxId,omitempty"`
	Address   Address    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("client name is required")
	}
	return nil
}
