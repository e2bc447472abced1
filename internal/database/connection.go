package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. DB_TYPE selects the
// backend: "postgres" connects to DATABASE_URL, anything else opens a local
// SQLite file at DATABASE_PATH (default data/hifzbot.db).
func Connect() error {
	if os.Getenv("DB_TYPE") == "postgres" {
		return connectPostgres()
	}
	return connectSQLite()
}

func connectPostgres() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	DB = db
	return initializeSchema()
}

func connectSQLite() error {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dataDir := "data"
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		dbPath = filepath.Join(dataDir, "hifzbot.db")
	}

	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	// Create learners table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS learners (
			telegram_id INTEGER PRIMARY KEY,
			username TEXT,
			first_name TEXT,
			last_name TEXT,
			is_admin BOOLEAN DEFAULT false,
			notification_enabled BOOLEAN DEFAULT true,
			notification_hour INTEGER DEFAULT 9,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create learners table: %v", err)
	}

	// Create memorized_surahs table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS memorized_surahs (
			learner_id INTEGER NOT NULL,
			surah_number INTEGER NOT NULL,
			position INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (learner_id) REFERENCES learners(telegram_id),
			PRIMARY KEY (learner_id, surah_number)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create memorized_surahs table: %v", err)
	}

	// Create daily_sessions table. The passage list is stored as one JSON
	// document so every save replaces the whole record.
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS daily_sessions (
			id TEXT PRIMARY KEY,
			learner_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			passages TEXT NOT NULL,
			tasks_completed INTEGER DEFAULT 0,
			total_tasks INTEGER DEFAULT 0,
			status TEXT DEFAULT 'in_progress',
			completed_at TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (learner_id) REFERENCES learners(telegram_id),
			UNIQUE(learner_id, date)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create daily_sessions table: %v", err)
	}

	// Create streak_states table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS streak_states (
			learner_id INTEGER PRIMARY KEY,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			total_sessions_completed INTEGER DEFAULT 0,
			last_completion_date TEXT DEFAULT '',
			rotation_cursor INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (learner_id) REFERENCES learners(telegram_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create streak_states table: %v", err)
	}

	return nil
}
