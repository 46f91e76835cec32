package queue

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/provreg/provreg/internal/config"
	"github.com/provreg/provreg/internal/database"
	"github.com/provreg/provreg/internal/email"
	"github.com/provreg/provreg/internal/queue/handlers"
	"github.com/provreg/provreg/internal/usecase"
)

// Server wraps asynq.Server for processing tasks
type Server struct {
	asynqServer *asynq.Server
	mux         *asynq.ServeMux
	sqlDB       *sql.DB
}

// Worker represents a worker application with all its dependencies
type Worker struct {
	server *Server
}

// NewWorker creates a fully configured worker with all dependencies
func NewWorker() (*Worker, error) {
	log.Println("Initializing worker dependencies...")

	var (
		dbname = os.Getenv(config.ENV_KEY_DB_DATABASE)
		dbpass = os.Getenv(config.ENV_KEY_DB_PASSWORD)
		dbuser = os.Getenv(config.ENV_KEY_DB_USER)
		dbport = os.Getenv(config.ENV_KEY_DB_PORT)
		dbhost = os.Getenv(config.ENV_KEY_DB_HOST)
	)

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbuser, dbpass, dbhost, dbport, dbname)
	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to open gorm database connection: %w", err)
	}

	repo := database.NewWithDB(gormDB)

	superAdmin, err := uuid.Parse(os.Getenv(config.ENV_KEY_SUPER_ADMIN_ID))
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("invalid %s: %w", config.ENV_KEY_SUPER_ADMIN_ID, err)
	}

	// The worker consumes events; it never publishes them.
	uc := usecase.New(repo, superAdmin, nil)

	var mailer usecase.EmailProvider
	if os.Getenv(config.ENV_KEY_SMTP_HOST) != "" {
		mailer = email.NewEmailProvider(
			os.Getenv(config.ENV_KEY_SMTP_HOST),
			os.Getenv(config.ENV_KEY_SMTP_USERNAME),
			os.Getenv(config.ENV_KEY_SMTP_PASSWORD),
			os.Getenv(config.ENV_KEY_SMTP_PORT),
		)
	}

	h := handlers.NewHandlers(
		uc,
		mailer,
		os.Getenv(config.ENV_KEY_NOTIFY_EMAIL_FROM),
		os.Getenv(config.ENV_KEY_NOTIFY_EMAIL_TO),
	)

	asynqServer := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     os.Getenv(config.ENV_KEY_REDIS_ADDR),
			Password: os.Getenv(config.ENV_KEY_REDIS_PASSWORD),
		},
		asynq.Config{
			Concurrency: 5,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(config.TASK_REGISTRY_EVENT, h.HandleRegistryEvent)

	return &Worker{
		server: &Server{
			asynqServer: asynqServer,
			mux:         mux,
			sqlDB:       sqlDB,
		},
	}, nil
}

// Run starts processing tasks; it blocks until Shutdown.
func (w *Worker) Run() error {
	log.Println("Worker starting...")
	return w.server.asynqServer.Run(w.server.mux)
}

// Shutdown stops the asynq server and closes the database connection.
func (w *Worker) Shutdown() {
	log.Println("Worker shutting down...")
	w.server.asynqServer.Shutdown()
	if err := w.server.sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
