package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"

	"github.com/operman-code/brojgar-worker/internal/config"
	"github.com/operman-code/brojgar-worker/internal/handlers"
	"github.com/operman-code/brojgar-worker/internal/repositories"
	"github.com/operman-code/brojgar-worker/internal/services"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	store    repositories.Store

	jobService *services.JobService

	userHandler     *handlers.UserHandler
	workerHandler   *handlers.WorkerHandler
	businessHandler *handlers.BusinessHandler
	jobHandler      *handlers.JobHandler
	paymentHandler  *handlers.PaymentHandler
}

func initializeApp(store repositories.Store, errorLog, infoLog *log.Logger) *application {
	// Services
	userService := &services.UserService{Store: store}
	statsService := &services.StatsService{Store: store}
	workerService := &services.WorkerService{Store: store, Stats: statsService}
	businessService := &services.BusinessService{Store: store, Stats: statsService}
	paymentService := &services.PaymentService{Store: store}
	jobService := &services.JobService{Store: store, Payments: paymentService}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	workerHandler := &handlers.WorkerHandler{Service: workerService}
	businessHandler := &handlers.BusinessHandler{Service: businessService}
	jobHandler := &handlers.JobHandler{Service: jobService, Workers: workerService}
	paymentHandler := &handlers.PaymentHandler{Service: paymentService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		store:           store,
		jobService:      jobService,
		userHandler:     userHandler,
		workerHandler:   workerHandler,
		businessHandler: businessHandler,
		jobHandler:      jobHandler,
		paymentHandler:  paymentHandler,
	}
}

// openStore builds the storage backend named in the config. The choice is
// made once here; backends are never mixed at runtime.
func openStore(cfg config.Config, infoLog *log.Logger) (repositories.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		store := repositories.NewMemoryStore()
		if cfg.Storage.SeedDemo {
			store.SeedDemo()
			infoLog.Println("Seeded demo data into memory store")
		}
		return store, func() {}, nil
	case "mysql":
		db, err := openDB(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLStore(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
