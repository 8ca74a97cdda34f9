package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tandin2000/invoiceBuilder/models"
)

type fakeSettingRepo struct {
	stored *models.Setting
}

func (f *fakeSettingRepo) SaveSettings(s *models.Setting) error {
	if s.ID == 0 {
		s.ID = 1
	}
	cp := *s
	f.stored = &cp
	return nil
}

func (f *fakeSettingRepo) GetSettings() (*models.Setting, error) {
	if f.stored == nil {
		return nil, nil
	}
	cp := *f.stored
	return &cp, nil
}

func TestGetSettingsCreatesDefault(t *testing.T) {
	repo := &fakeSettingRepo{}
	h := &SettingHandler{Repo: repo}

	w := httptest.NewRecorder()
	h.GetSettings(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if repo.stored == nil {
		t.Fatalf("first GET should persist a default settings record")
	}
}

func TestUpdateSettingsKeepsSignatureWhenOmitted(t *testing.T) {
	repo := &fakeSettingRepo{stored: &models.Setting{
		ID:        1,
		Signature: "data:image/png;base64,abcd",
	}}
	h := &SettingHandler{Repo: repo}

	body := `{"companyName": "Acme Plumbing Ltd", "termsAndConditions": "Net 30"}`
	w := httptest.NewRecorder()
	h.UpdateSettings(w, httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.stored.CompanyName != "Acme Plumbing Ltd" {
		t.Fatalf("company name not saved, got %q", repo.stored.CompanyName)
	}
	if repo.stored.Signature != "data:image/png;base64,abcd" {
		t.Fatalf("omitted signature must be preserved, got %q", repo.stored.Signature)
	}
}

func TestUpdateSettingsOverwritesSignatureWhenPresent(t *testing.T) {
	repo := &fakeSettingRepo{stored: &models.Setting{ID: 1, Signature: "old"}}
	h := &SettingHandler{Repo: repo}

	body := `{"companyName": "Acme", "signature": ""}`
	w := httptest.NewRecorder()
	h.UpdateSettings(w, httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if repo.stored.Signature != "" {
		t.Fatalf("explicit empty signature must clear the stored one, got %q", repo.stored.Signature)
	}

	var resp models.Setting
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CompanyName != "Acme" {
		t.Fatalf("unexpected response company name %q", resp.CompanyName)
	}
}
