package cards

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed persistent cache of provider card data, keyed
// by (set code, collector number).
type Store struct {
	db *sql.DB
}

// OpenStore opens (and migrates) the card store at dbPath.
func OpenStore(dbPath string) (*Store, error) {
	if err := MigrateStore(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open card store: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStore wraps an already-open database. The schema must exist.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSet upserts every card of a set.
func (s *Store) SaveSet(ctx context.Context, setCode string, data []*CardData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO set_cards (set_code, number, name, supertype, subtypes, types, regulation_mark, rules_text, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (set_code, number) DO UPDATE SET
			name = excluded.name,
			supertype = excluded.supertype,
			subtypes = excluded.subtypes,
			types = excluded.types,
			regulation_mark = excluded.regulation_mark,
			rules_text = excluded.rules_text,
			fetched_at = excluded.fetched_at`)
	if err != nil {
		return fmt.Errorf("prepare save: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().UTC()
	for _, d := range data {
		subtypes, err := json.Marshal(d.Subtypes)
		if err != nil {
			return fmt.Errorf("marshal subtypes for %s: %w", d.Name, err)
		}
		types, err := json.Marshal(d.Types)
		if err != nil {
			return fmt.Errorf("marshal types for %s: %w", d.Name, err)
		}
		rules, err := json.Marshal(d.RulesText)
		if err != nil {
			return fmt.Errorf("marshal rules text for %s: %w", d.Name, err)
		}

		if _, err := stmt.ExecContext(ctx, setCode, d.Number, d.Name, d.Supertype,
			string(subtypes), string(types), d.RegulationMark, string(rules), now); err != nil {
			return fmt.Errorf("save card %s %s: %w", setCode, d.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// SetCards returns all stored cards of a set in collector number order.
// An unknown set returns an empty slice, not an error.
func (s *Store) SetCards(ctx context.Context, setCode string) ([]*CardData, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT set_code, number, name, supertype, subtypes, types, regulation_mark, rules_text
		FROM set_cards
		WHERE set_code = ?
		ORDER BY CAST(number AS INTEGER), number`, setCode)
	if err != nil {
		return nil, fmt.Errorf("query set %s: %w", setCode, err)
	}
	defer func() { _ = rows.Close() }()

	var out []*CardData
	for rows.Next() {
		var d CardData
		var subtypes, types, rules string
		if err := rows.Scan(&d.SetCode, &d.Number, &d.Name, &d.Supertype,
			&subtypes, &types, &d.RegulationMark, &rules); err != nil {
			return nil, fmt.Errorf("scan card row: %w", err)
		}
		if err := json.Unmarshal([]byte(subtypes), &d.Subtypes); err != nil {
			return nil, fmt.Errorf("unmarshal subtypes: %w", err)
		}
		if err := json.Unmarshal([]byte(types), &d.Types); err != nil {
			return nil, fmt.Errorf("unmarshal types: %w", err)
		}
		if err := json.Unmarshal([]byte(rules), &d.RulesText); err != nil {
			return nil, fmt.Errorf("unmarshal rules text: %w", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card rows: %w", err)
	}
	return out, nil
}
