package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"clip-whisper/internal/app/model"
	"clip-whisper/internal/app/repository"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions
(
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    file_name       TEXT    NOT NULL,
    file_path       TEXT    NOT NULL,
    file_size_bytes INTEGER NOT NULL DEFAULT 0,
    audio_duration  REAL    NOT NULL DEFAULT 0,
    provider        TEXT    NOT NULL,
    model           TEXT    NOT NULL DEFAULT '',
    transcription   TEXT    NOT NULL DEFAULT '',
    output_path     TEXT    NOT NULL DEFAULT '',
    error_message   TEXT    NOT NULL DEFAULT '',
    created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens the history database at dbFilePath, creating the file,
// its parent directories and the schema on first use.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	if dir := filepath.Dir(dbFilePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %v", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %v", err)
	}

	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) RecordToDB(t *model.Transcription) error {
	insertSQL := `INSERT INTO transcriptions (file_name, file_path, file_size_bytes, audio_duration, provider, model, transcription, output_path, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, t.FileName, t.FilePath, t.FileSizeBytes, t.AudioDuration,
		t.Provider, t.Model, t.Transcription, t.OutputPath, t.ErrorMessage, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert failed: %v", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetRecent(limit int) ([]model.Transcription, error) {
	if limit <= 0 {
		limit = repository.DefaultRecentLimit
	}

	sqlStr := `
		SELECT id, file_name, file_path, file_size_bytes, audio_duration, provider, model, transcription, output_path, error_message, created_at
		FROM transcriptions
		ORDER BY created_at DESC, id DESC
		LIMIT ?;`
	rows, err := sdb.db.Query(sqlStr, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)

	for rows.Next() {
		var t model.Transcription
		err = rows.Scan(&t.ID, &t.FileName, &t.FilePath, &t.FileSizeBytes, &t.AudioDuration,
			&t.Provider, &t.Model, &t.Transcription, &t.OutputPath, &t.ErrorMessage, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}

		transcriptions = append(transcriptions, t)
	}
	return transcriptions, rows.Err()
}
