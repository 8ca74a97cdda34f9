package routes

import (
	"net/http"
	"strings"

	"github.com/tandin2000/invoiceBuilder/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(pattern string, h http.HandlerFunc) {
	http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
}

func SetupRoutes(
	clientHandler *handlers.ClientHandler,
	invoiceHandler *handlers.InvoiceHandler,
	settingHandler *handlers.SettingHandler,
	pdfHandler *handlers.PDFHandler,
	uploadDir string,
) {
	// Client routes
	handle("/api/clients", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			clientHandler.CreateClient(w, r)
		case http.MethodGet:
			clientHandler.GetAllClients(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	handle("/api/clients/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/clients/"), "/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			clientHandler.GetClientByID(w, r, id)
		case http.MethodPut:
			clientHandler.UpdateClient(w, r, id)
		case http.MethodDelete:
			clientHandler.DeleteClient(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Invoice routes
	handle("/api/invoices", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			invoiceHandler.CreateInvoice(w, r)
		case http.MethodGet:
			invoiceHandler.GetAllInvoices(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	handle("/api/invoices/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/invoices/"), "/")
		if rest == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// Sub-resources: /api/invoices/{id}/status, /send, /download
		if id, ok := strings.CutSuffix(rest, "/status"); ok {
			if r.Method != http.MethodPatch && r.Method != http.MethodPut {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			invoiceHandler.UpdateStatus(w, r, id)
			return
		}
		if id, ok := strings.CutSuffix(rest, "/send"); ok {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			pdfHandler.SendInvoice(w, r, id)
			return
		}
		if id, ok := strings.CutSuffix(rest, "/download"); ok {
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			pdfHandler.DownloadInvoicePDF(w, r, id)
			return
		}

		switch r.Method {
		case http.MethodGet:
			invoiceHandler.GetInvoiceByID(w, r, rest)
		case http.MethodPut:
			invoiceHandler.UpdateInvoice(w, r, rest)
		case http.MethodDelete:
			invoiceHandler.DeleteInvoice(w, r, rest)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Settings singleton
	handle("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			settingHandler.GetSettings(w, r)
		case http.MethodPut, http.MethodPost:
			settingHandler.UpdateSettings(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Generated PDFs are served from the local upload directory
	http.Handle("/uploads/", withCORS(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))))
}
