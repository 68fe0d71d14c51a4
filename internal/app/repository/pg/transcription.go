package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"clip-whisper/internal/app/model"
	"clip-whisper/internal/app/repository"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions
(
    id              SERIAL PRIMARY KEY,
    file_name       TEXT        NOT NULL,
    file_path       TEXT        NOT NULL,
    file_size_bytes BIGINT      NOT NULL DEFAULT 0,
    audio_duration  DOUBLE PRECISION NOT NULL DEFAULT 0,
    provider        TEXT        NOT NULL,
    model           TEXT        NOT NULL DEFAULT '',
    transcription   TEXT        NOT NULL DEFAULT '',
    output_path     TEXT        NOT NULL DEFAULT '',
    error_message   TEXT        NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB connects to the history database described by the
// connection string and ensures the schema exists.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %v", err)
	}

	return &PostgresDB{db: db}, nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) RecordToDB(t *model.Transcription) error {
	insertSQL := `INSERT INTO transcriptions (file_name, file_path, file_size_bytes, audio_duration, provider, model, transcription, output_path, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := pdb.db.Exec(insertSQL, t.FileName, t.FilePath, t.FileSizeBytes, t.AudioDuration,
		t.Provider, t.Model, t.Transcription, t.OutputPath, t.ErrorMessage, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert failed: %v", err)
	}
	return nil
}

func (pdb *PostgresDB) GetRecent(limit int) ([]model.Transcription, error) {
	if limit <= 0 {
		limit = repository.DefaultRecentLimit
	}

	query := `
		SELECT id, file_name, file_path, file_size_bytes, audio_duration, provider, model, transcription, output_path, error_message, created_at
		FROM transcriptions
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := pdb.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var transcriptions []model.Transcription

	for rows.Next() {
		var t model.Transcription
		err = rows.Scan(&t.ID, &t.FileName, &t.FilePath, &t.FileSizeBytes, &t.AudioDuration,
			&t.Provider, &t.Model, &t.Transcription, &t.OutputPath, &t.ErrorMessage, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}

		transcriptions = append(transcriptions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}

	return transcriptions, nil
}
