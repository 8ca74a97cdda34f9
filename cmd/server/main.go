package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/tandin2000/invoiceBuilder/config"
	"github.com/tandin2000/invoiceBuilder/db"
	"github.com/tandin2000/invoiceBuilder/db/mongo"
	"github.com/tandin2000/invoiceBuilder/db/postgres"
	"github.com/tandin2000/invoiceBuilder/handlers"
	"github.com/tandin2000/invoiceBuilder/repository"
	"github.com/tandin2000/invoiceBuilder/routes"
	"github.com/tandin2000/invoiceBuilder/utils"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	var invoiceRepo repository.InvoiceRepository
	var clientRepo repository.ClientRepository
	var settingRepo repository.SettingRepository
	var database db.DB

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		database = pg
		if err := pg.Connect(); err != nil {
			panic(err)
		}

		invoiceRepo = repository.NewPostgresInvoiceRepo(pg.Conn)
		clientRepo = repository.NewPostgresClientRepo(pg.Conn)
		settingRepo = repository.NewPostgresSettingRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		database = mg
		if err := mg.Connect(); err != nil {
			panic(err)
		}

		invoiceRepo = repository.NewMongoInvoiceRepo(mg.Client)
		clientRepo = repository.NewMongoClientRepo(mg.Client)
		settingRepo = repository.NewMongoSettingRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}
	defer database.Disconnect()

	// Handlers
	clientHandler := &handlers.ClientHandler{Repo: clientRepo}
	invoiceHandler := &handlers.InvoiceHandler{Repo: invoiceRepo}
	settingHandler := &handlers.SettingHandler{Repo: settingRepo}

	// PDF handler with combined repository
	pdfRepo := repository.NewPDFRepository(invoiceRepo, clientRepo, settingRepo)
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo}

	routes.SetupRoutes(clientHandler, invoiceHandler, settingHandler, pdfHandler, cfg.UploadDir)

	port := cfg.Port
	logger.Info("server listening", zap.String("port", port))
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
