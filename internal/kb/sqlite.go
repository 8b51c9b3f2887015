package kb

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// Schema is the expected layout of a SQLite knowledge-base document.
// Declared entry order is the insertion (rowid) order.
const Schema = `
CREATE TABLE IF NOT EXISTS semantic_entries (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	term      TEXT NOT NULL UNIQUE,
	domain    TEXT NOT NULL,
	subdomain TEXT,
	vector    BLOB,
	questions TEXT,
	actions   TEXT,
	modifiers TEXT
);
`

// SQLiteSource loads a knowledge-base document from a SQLite database.
// Vectors are stored as little-endian float32 blobs; questions, actions,
// and modifiers are JSON columns.
type SQLiteSource struct {
	Path string
}

// NewSQLiteSource creates a source reading from the database at path.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{Path: path}
}

// Name identifies the source in error messages.
func (s *SQLiteSource) Name() string {
	return fmt.Sprintf("sqlite:%s", s.Path)
}

// Load reads every entry in insertion order.
func (s *SQLiteSource) Load(ctx context.Context) (*KnowledgeBase, error) {
	db, err := sql.Open(DriverName, s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, `
		SELECT term, domain, subdomain, vector, questions, actions, modifiers
		FROM semantic_entries
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	kb := New()
	for rows.Next() {
		var (
			term, domain string
			subdomain    sql.NullString
			vectorBlob   []byte
			questions    sql.NullString
			actions      sql.NullString
			modifiers    sql.NullString
		)
		if err := rows.Scan(&term, &domain, &subdomain, &vectorBlob, &questions, &actions, &modifiers); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		entry := &types.SemanticEntry{
			Domain:    types.DomainTag(domain),
			Subdomain: subdomain.String,
			Vector:    DeserializeVector(vectorBlob),
		}
		if questions.Valid && questions.String != "" {
			if err := json.Unmarshal([]byte(questions.String), &entry.Questions); err != nil {
				return nil, fmt.Errorf("entry %q questions: %w", term, err)
			}
		}
		if actions.Valid && actions.String != "" {
			entry.Actions = &types.ActionSet{}
			if err := json.Unmarshal([]byte(actions.String), entry.Actions); err != nil {
				return nil, fmt.Errorf("entry %q actions: %w", term, err)
			}
		}
		if modifiers.Valid && modifiers.String != "" {
			if err := json.Unmarshal([]byte(modifiers.String), &entry.Modifiers); err != nil {
				return nil, fmt.Errorf("entry %q modifiers: %w", term, err)
			}
		}

		if err := kb.Add(term, entry); err != nil {
			return nil, err
		}
	}

	return kb, rows.Err()
}

// SerializeVector converts a float32 slice to a byte blob (little-endian).
func SerializeVector(vector []float32) []byte {
	blob := make([]byte, len(vector)*4)
	for i, v := range vector {
		binary.LittleEndian.PutUint32(blob[i*4:], math.Float32bits(v))
	}
	return blob
}

// DeserializeVector converts a byte blob back to a float32 slice. A nil or
// empty blob yields a nil vector, which consumers treat as "no vector".
func DeserializeVector(blob []byte) []float32 {
	if len(blob) == 0 {
		return nil
	}
	vector := make([]float32, len(blob)/4)
	for i := range vector {
		bits := binary.LittleEndian.Uint32(blob[i*4:])
		vector[i] = math.Float32frombits(bits)
	}
	return vector
}
