package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tandin2000/invoiceBuilder/models"
	"github.com/tandin2000/invoiceBuilder/repository"
)

type SettingHandler struct {
	Repo repository.SettingRepository
}

// GetSettings returns the singleton settings record, creating a default one
// on first access
func (h *SettingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Repo.GetSettings()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if settings == nil {
		settings = &models.Setting{}
		if err := h.Repo.SaveSettings(settings); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings upserts the singleton settings record. The signature is
// only overwritten when the field is present in the payload.
func (h *SettingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CompanyName        string  `json:"companyName"`
		Address            string  `json:"address"`
		TermsAndConditions string  `json:"termsAndConditions"`
		Signature          *string `json:"signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.Repo.GetSettings()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if settings == nil {
		settings = &models.Setting{}
	}

	settings.CompanyName = payload.CompanyName
	settings.Address = payload.Address
	settings.TermsAndConditions = payload.TermsAndConditions
	if payload.Signature != nil {
		settings.Signature = *payload.Signature
	}

	if err := h.Repo.SaveSettings(settings); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
