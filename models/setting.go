package models

import "time"

// Setting is the singleton company record. At most one exists system-wide;
// GET creates a default one when none is stored yet.
type Setting struct {
	ID                 int64      `json:"id" bson:"_id,omitempty"`
	CompanyName        string     `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Address            string     `json:"address,omitempty" bson:"address,omitempty"`
	TermsAndConditions string     `json:"termsAndConditions,omitempty" bson:"termsAndConditions,omitempty"`
	Signature          string     `json:"signature,omitempty" bson:"signature,omitempty"` // data URI, optional
	CreatedAt          time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
