package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS player (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		x REAL NOT NULL,
		y REAL NOT NULL,
		money INTEGER NOT NULL,
		tool TEXT NOT NULL,
		seed TEXT NOT NULL,
		ingroup INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS items (
		name TEXT PRIMARY KEY,
		count INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS cosmetics (
		name TEXT PRIMARY KEY,
		equipped INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS soil (
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		watered INTEGER NOT NULL,
		plant TEXT NOT NULL,
		age REAL NOT NULL,
		PRIMARY KEY (x, y)
	);`,
}

// Store persists snapshots in a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the save database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("save path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}
	db, err := sql.Open("sqlite", cleanPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the last snapshot. The boolean is false when nothing was saved.
func (s *Store) Load(ctx context.Context) (Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, false, err
	}
	var (
		snap    Snapshot
		ingroup int
	)
	row := s.db.QueryRowContext(ctx, `SELECT x, y, money, tool, seed, ingroup FROM player WHERE id = 1`)
	err := row.Scan(&snap.Player.X, &snap.Player.Y, &snap.Player.Money, &snap.Player.Tool, &snap.Player.Seed, &ingroup)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("load player: %w", err)
	}
	snap.Player.Ingroup = ingroup != 0

	snap.Player.Items = map[string]int{}
	if err := s.scan(ctx, `SELECT name, count FROM items`, func(rows *sql.Rows) error {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return err
		}
		snap.Player.Items[name] = count
		return nil
	}); err != nil {
		return Snapshot{}, false, fmt.Errorf("load items: %w", err)
	}

	snap.Player.Cosmetics = map[string]bool{}
	if err := s.scan(ctx, `SELECT name, equipped FROM cosmetics`, func(rows *sql.Rows) error {
		var name string
		var equipped int
		if err := rows.Scan(&name, &equipped); err != nil {
			return err
		}
		snap.Player.Cosmetics[name] = equipped != 0
		return nil
	}); err != nil {
		return Snapshot{}, false, fmt.Errorf("load cosmetics: %w", err)
	}

	if err := s.scan(ctx, `SELECT x, y, watered, plant, age FROM soil ORDER BY y, x`, func(rows *sql.Rows) error {
		var tile Tile
		var watered int
		if err := rows.Scan(&tile.X, &tile.Y, &watered, &tile.Plant, &tile.Age); err != nil {
			return err
		}
		tile.Watered = watered != 0
		snap.Soil = append(snap.Soil, tile)
		return nil
	}); err != nil {
		return Snapshot{}, false, fmt.Errorf("load soil: %w", err)
	}
	return snap, true, nil
}

func (s *Store) scan(ctx context.Context, query string, fn func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Save replaces the stored snapshot in a single transaction.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("save store is not configured")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p := snap.Player
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO player (id, x, y, money, tool, seed, ingroup) VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET x = excluded.x, y = excluded.y, money = excluded.money,
			tool = excluded.tool, seed = excluded.seed, ingroup = excluded.ingroup`,
		p.X, p.Y, p.Money, p.Tool, p.Seed, boolInt(p.Ingroup)); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	for _, stmt := range []string{`DELETE FROM items`, `DELETE FROM cosmetics`, `DELETE FROM soil`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear previous save: %w", err)
		}
	}
	for name, count := range p.Items {
		if _, err := tx.ExecContext(ctx, `INSERT INTO items (name, count) VALUES (?, ?)`, name, count); err != nil {
			return fmt.Errorf("save item %q: %w", name, err)
		}
	}
	for name, equipped := range p.Cosmetics {
		if _, err := tx.ExecContext(ctx, `INSERT INTO cosmetics (name, equipped) VALUES (?, ?)`, name, boolInt(equipped)); err != nil {
			return fmt.Errorf("save cosmetic %q: %w", name, err)
		}
	}
	for _, tile := range snap.Soil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO soil (x, y, watered, plant, age) VALUES (?, ?, ?, ?, ?)`,
			tile.X, tile.Y, boolInt(tile.Watered), tile.Plant, tile.Age); err != nil {
			return fmt.Errorf("save soil (%d,%d): %w", tile.X, tile.Y, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
