package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"clip2txt/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	start_sec INTEGER NOT NULL,
	end_sec INTEGER NOT NULL,
	audio_duration INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL,
	transcript_path TEXT NOT NULL DEFAULT '',
	error_message TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if necessary) the run-history database.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

// newWithDB wraps an existing connection; used by tests.
func newWithDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Record(run model.Run) error {
	insertSQL := `INSERT INTO runs (id, source, start_sec, end_sec, audio_duration, status, transcript_path, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, run.ID, run.Source, run.StartSec, run.EndSec,
		run.AudioDuration, string(run.Status), run.TranscriptPath, run.ErrorMessage, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}
	return nil
}

// CheckIfSourceProcessed returns the id of a completed run for source, or an
// error when none exists.
func (sdb *SQLiteDB) CheckIfSourceProcessed(source string) (string, error) {
	query := `SELECT id FROM runs WHERE source = ? AND status = 'completed'`
	row := sdb.db.QueryRow(query, source)
	var id string
	err := row.Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) GetAll() ([]model.Run, error) {
	sqlStr := `
		SELECT id, source, start_sec, end_sec, audio_duration, status, transcript_path, error_message, created_at
		FROM runs
		ORDER BY created_at DESC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	runs := make([]model.Run, 0)

	for rows.Next() {
		var r model.Run
		var status string
		err = rows.Scan(&r.ID, &r.Source, &r.StartSec, &r.EndSec, &r.AudioDuration,
			&status, &r.TranscriptPath, &r.ErrorMessage, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		r.Status = model.RunStatus(status)

		runs = append(runs, r)
	}
	return runs, rows.Err()
}
