package infra

import (
	"fmt"
	"log"
	"os"
	"sync"

	"campusvoice/internal/models/db_models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database owns the single shared connection handle. Every repository borrows
// the same *gorm.DB; nothing opens per-request connections.
type Database struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewDatabase() *Database {
	return &Database{}
}

// Connect is idempotent: a live handle is reused, not recreated. The first
// successful connect also provisions the schema and its uniqueness
// constraints (student/admin email, (student, course) feedback pair,
// (student, admin) block pair). Failure here is fatal to startup; callers get
// the error, nothing retries.
func (d *Database) Connect() (*gorm.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return d.db, nil
	}

	dsn := os.Getenv("POSTGRES_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(
		&db_models.Student{},
		&db_models.Admin{},
		&db_models.Course{},
		&db_models.Feedback{},
		&db_models.BlockedUser{},
	); err != nil {
		return nil, fmt.Errorf("provisioning constraints: %w", err)
	}

	log.Println("Connected to PostgreSQL")
	d.db = db
	return d.db, nil
}

// Close releases the connection and resets state so a later Connect
// re-establishes cleanly.
func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}

	log.Println("PostgreSQL connection closed")
	d.db = nil
	return nil
}

// MustConnect is the startup path: connect or die.
func (d *Database) MustConnect() *gorm.DB {
	db, err := d.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}
