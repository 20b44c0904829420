package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/prefeitura-rio/app-cnh/internal/models"
)

//go:embed schema.sql
var schemaSQL string

const cnhTable = "cnhs"

// columnList is the fixed, ordered column set every statement selects.
var columnList = strings.Join(models.CNHFields, ", ")

// SQLiteStore persists records in a single SQLite table.
// Uses WAL mode and a single connection, since SQLite allows one writer at a time.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path and
// ensures the cnhs table exists. Safe to call on an existing database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Backend implements Store
func (s *SQLiteStore) Backend() string {
	return "sqlite"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCNH(row rowScanner) (*models.CNH, error) {
	values := make([]string, len(models.CNHFields))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	cnh := models.CNHFromValues(values)
	return &cnh, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// Create implements Store
func (s *SQLiteStore) Create(ctx context.Context, cnh *models.CNH) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(models.CNHFields)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", cnhTable, columnList, placeholders)

	values := cnh.Values()
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.AlreadyExists(cnh.Registro)
		}
		return fmt.Errorf("failed to insert CNH: %w", err)
	}
	return nil
}

// List implements Store
func (s *SQLiteStore) List(ctx context.Context) ([]models.CNH, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY registro", columnList, cnhTable)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list CNHs: %w", err)
	}
	defer rows.Close()

	cnhs := []models.CNH{}
	for rows.Next() {
		cnh, err := scanCNH(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan CNH: %w", err)
		}
		cnhs = append(cnhs, *cnh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate CNHs: %w", err)
	}
	return cnhs, nil
}

// Get implements Store
func (s *SQLiteStore) Get(ctx context.Context, registro string) (*models.CNH, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE registro = ?", columnList, cnhTable)

	cnh, err := scanCNH(s.db.QueryRowContext(ctx, query, registro))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFound(registro)
		}
		return nil, fmt.Errorf("failed to get CNH: %w", err)
	}
	return cnh, nil
}

// buildUpdateStatement builds a parameterized UPDATE restricted to known columns.
// Column names come from the whitelist, never from the request; values are bound.
func buildUpdateStatement(registro string, fields map[string]string) (string, []any, error) {
	if err := checkUpdateFields(fields); err != nil {
		return "", nil, err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, len(names))
	args := make([]any, 0, len(names)+1)
	for i, name := range names {
		assignments[i] = name + " = ?"
		args = append(args, fields[name])
	}
	args = append(args, registro)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE registro = ? RETURNING %s",
		cnhTable, strings.Join(assignments, ", "), columnList)
	return query, args, nil
}

// Update implements Store
func (s *SQLiteStore) Update(ctx context.Context, registro string, fields map[string]string) (*models.CNH, error) {
	if len(fields) == 0 {
		return s.Get(ctx, registro)
	}

	query, args, err := buildUpdateStatement(registro, fields)
	if err != nil {
		return nil, err
	}

	cnh, err := scanCNH(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFound(registro)
		}
		return nil, fmt.Errorf("failed to update CNH: %w", err)
	}
	return cnh, nil
}

// Delete implements Store
func (s *SQLiteStore) Delete(ctx context.Context, registro string) (*models.CNH, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE registro = ? RETURNING %s", cnhTable, columnList)

	cnh, err := scanCNH(s.db.QueryRowContext(ctx, query, registro))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFound(registro)
		}
		return nil, fmt.Errorf("failed to delete CNH: %w", err)
	}
	return cnh, nil
}

// Ping implements Store
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements Store
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
