package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tandin2000/invoiceBuilder/models"
	"github.com/tandin2000/invoiceBuilder/repository"
)

type ClientHandler struct {
	Repo repository.ClientRepository
}

// CreateClient handler
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := client.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.CreateClient(&client); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, client)
}

// GetAllClients handler
func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetClients(map[string]interface{}{}, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Client{}
	}

	writeJSON(w, http.StatusOK, list)
}

// GetClientByID handler
func (h *ClientHandler) GetClientByID(w http.ResponseWriter, r *http.Request, id string) {
	clientID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid client ID", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.GetClients(map[string]interface{}{"id": clientID}, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		http.Error(w, "Client not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, list[0])
}

// UpdateClient handler
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request, id string) {
	clientID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid client ID", http.StatusBadRequest)
		return
	}

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	client.ID = clientID

	if err := client.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateClient(&client); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// DeleteClient handler
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request, id string) {
	clientID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid client ID", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteClient(clientID); err != nil {
		http.Error(w, "failed to delete client: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Client deleted successfully",
	})
}
