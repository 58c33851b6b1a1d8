package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// SQLite handles single large blobs poorly, so tables are stored as
// ordered chunks of this size.
const patternChunkSize = 1 << 20

var (
	// ErrPatternNotFound reports a pattern table name with no stored data.
	ErrPatternNotFound = errors.New("storage: pattern table not found")

	// ErrPatternCorrupt reports stored chunks that no longer match the
	// recorded checksum or size.
	ErrPatternCorrupt = errors.New("storage: pattern table corrupt")
)

// PatternTable describes a stored pattern table.
type PatternTable struct {
	Name      string
	Kind      string
	SizeBytes int64
	ChunkSize int64
	Checksum  string
	CreatedAt time.Time
}

// PatternRepository stores and loads pattern tables as chunked blobs.
type PatternRepository struct {
	db *DB
}

// NewPatternRepository creates a new pattern repository.
func NewPatternRepository(db *DB) *PatternRepository {
	return &PatternRepository{db: db}
}

// Save stores a pattern table under the given name, replacing any
// previous table with that name.
func (r *PatternRepository) Save(name, kind string, data []byte) error {
	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])
	createdAt := time.Now().UTC()

	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM pattern_tables WHERE name = ?", name); err != nil {
			return fmt.Errorf("failed to replace pattern table: %w", err)
		}

		_, err := tx.Exec(`
			INSERT INTO pattern_tables (name, kind, size_bytes, chunk_size, checksum, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, name, kind, int64(len(data)), int64(patternChunkSize), checksum, createdAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert pattern table: %w", err)
		}

		for seq, off := 0, 0; off < len(data); seq, off = seq+1, off+patternChunkSize {
			end := off + patternChunkSize
			if end > len(data) {
				end = len(data)
			}
			_, err := tx.Exec(`
				INSERT INTO pattern_chunks (table_name, seq, data)
				VALUES (?, ?, ?)
			`, name, seq, data[off:end])
			if err != nil {
				return fmt.Errorf("failed to insert pattern chunk %d: %w", seq, err)
			}
		}

		return nil
	})
}

// Load reads a pattern table back and verifies it against the recorded
// checksum.
func (r *PatternRepository) Load(name string) ([]byte, error) {
	meta, err := r.Info(name)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT data FROM pattern_chunks
		WHERE table_name = ?
		ORDER BY seq
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern chunks: %w", err)
	}
	defer rows.Close()

	data := make([]byte, 0, meta.SizeBytes)
	for rows.Next() {
		var chunk []byte
		if err := rows.Scan(&chunk); err != nil {
			return nil, fmt.Errorf("failed to scan pattern chunk: %w", err)
		}
		data = append(data, chunk...)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pattern chunks: %w", err)
	}

	if int64(len(data)) != meta.SizeBytes {
		return nil, fmt.Errorf("%w: got %d bytes, recorded %d", ErrPatternCorrupt, len(data), meta.SizeBytes)
	}
	sum := sha256.Sum256(data)
	if hex.EncodeToString(sum[:]) != meta.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrPatternCorrupt)
	}

	return data, nil
}

// Info retrieves a pattern table's metadata.
func (r *PatternRepository) Info(name string) (*PatternTable, error) {
	var t PatternTable
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT name, kind, size_bytes, chunk_size, checksum, created_at
		FROM pattern_tables
		WHERE name = ?
	`, name).Scan(&t.Name, &t.Kind, &t.SizeBytes, &t.ChunkSize, &t.Checksum, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrPatternNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pattern table: %w", err)
	}

	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &t, nil
}

// List retrieves metadata for every stored pattern table.
func (r *PatternRepository) List() ([]PatternTable, error) {
	rows, err := r.db.Query(`
		SELECT name, kind, size_bytes, chunk_size, checksum, created_at
		FROM pattern_tables
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pattern tables: %w", err)
	}
	defer rows.Close()

	var tables []PatternTable
	for rows.Next() {
		var t PatternTable
		var createdAtStr string
		if err := rows.Scan(&t.Name, &t.Kind, &t.SizeBytes, &t.ChunkSize, &t.Checksum, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan pattern table: %w", err)
		}
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		tables = append(tables, t)
	}

	return tables, rows.Err()
}

// Delete removes a pattern table and its chunks (cascading).
func (r *PatternRepository) Delete(name string) error {
	_, err := r.db.Exec("DELETE FROM pattern_tables WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete pattern table: %w", err)
	}
	return nil
}
