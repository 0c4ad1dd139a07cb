package armylist

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteConfig contains configuration for the SQLite army repository.
type SQLiteConfig struct {
	// Path is the database file. Empty means a private in-memory database.
	Path string
}

// SQLiteRepository stores armies as JSON documents in a single table
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLite opens the database and applies the schema
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	dsn := ":memory:"
	if cfg.Path != "" {
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)",
			cfg.Path,
		)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	// one connection keeps an in-memory database alive and serialises writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply sqlite schema")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close releases the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ping checks that the database answers
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create stores a new army
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Army)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal army")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM armies WHERE id = ?`, input.Army.ID).Scan(&exists)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("army with ID %s already exists", input.Army.ID)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO armies(id, name, data, created_at, updated_at) VALUES(?,?,?,?,?)`,
		input.Army.ID, input.Army.Name, string(data), input.Army.CreatedAt, input.Army.UpdatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create army")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit army")
	}

	slog.DebugContext(ctx, "stored army in sqlite", "army_id", input.Army.ID)

	return &CreateOutput{Army: input.Army.Clone()}, nil
}

// Get retrieves an army by ID
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM armies WHERE id = ?`, input.ID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("army with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get army")
	}

	army, err := decodeArmy(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal army %s", input.ID)
	}

	return &GetOutput{Army: army}, nil
}

// Update replaces an existing army
func (r *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Army)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal army")
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE armies SET name = ?, data = ?, updated_at = ? WHERE id = ?`,
		input.Army.Name, string(data), input.Army.UpdatedAt, input.Army.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update army")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update army")
	}
	if n == 0 {
		return nil, errors.NotFoundf("army with ID %s not found", input.Army.ID)
	}

	slog.DebugContext(ctx, "updated army in sqlite", "army_id", input.Army.ID)

	return &UpdateOutput{Army: input.Army.Clone()}, nil
}

// Delete removes an army by ID
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM armies WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete army")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete army")
	}
	if n == 0 {
		return nil, errors.NotFoundf("army with ID %s not found", input.ID)
	}

	slog.DebugContext(ctx, "deleted army from sqlite", "army_id", input.ID)

	return &DeleteOutput{}, nil
}

// List returns every army, oldest first
func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, data FROM armies ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list armies")
	}
	defer func() { _ = rows.Close() }()

	armies := []*wh40k.ArmyList{}
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, errors.Wrapf(err, "failed to scan army")
		}
		army, err := decodeArmy(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal army %s", id)
		}
		armies = append(armies, army)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list armies")
	}

	return &ListOutput{Armies: armies}, nil
}

func decodeArmy(data string) (*wh40k.ArmyList, error) {
	var army wh40k.ArmyList
	if err := json.Unmarshal([]byte(data), &army); err != nil {
		return nil, err
	}
	return &army, nil
}
