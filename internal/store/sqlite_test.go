package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SQLiteStoreSuite struct {
	StoreContractSuite
}

func TestSQLiteStoreSuite(t *testing.T) {
	s := new(SQLiteStoreSuite)
	s.newStore = func() Store {
		st, err := OpenSQLite(filepath.Join(s.T().TempDir(), "cnh.db"))
		s.Require().NoError(err)
		return st
	}
	suite.Run(t, s)
}

func TestOpenSQLite_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cnh.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file was not created")
}

func TestOpenSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cnh.db")

	s1, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s1.Create(ctx, newTestCNH("1")))
	require.NoError(t, s1.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	cnh, err := s2.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, *newTestCNH("1"), *cnh)
}

func TestOpenSQLite_AppliesPragmas(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "cnh.db"))
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, s.db.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestSQLiteStore_ListOrderedByRegistro(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "cnh.db"))
	require.NoError(t, err)
	defer s.Close()

	for _, registro := range []string{"c", "a", "b"} {
		require.NoError(t, s.Create(ctx, newTestCNH(registro)))
	}

	cnhs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, cnhs, 3)
	assert.Equal(t, "a", cnhs[0].Registro)
	assert.Equal(t, "b", cnhs[1].Registro)
	assert.Equal(t, "c", cnhs[2].Registro)
}

func TestBuildUpdateStatement(t *testing.T) {
	query, args, err := buildUpdateStatement("42", map[string]string{
		"validade":  "05/04/2035",
		"categoria": "B",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE cnhs SET categoria = ?, validade = ? WHERE registro = ? RETURNING registro, nome")
	assert.Equal(t, []any{"B", "05/04/2035", "42"}, args)
}

func TestBuildUpdateStatement_RejectsUnknownColumns(t *testing.T) {
	_, _, err := buildUpdateStatement("42", map[string]string{
		"categoria = 'A' WHERE 1=1; --": "x",
	})
	assert.Error(t, err)

	_, _, err = buildUpdateStatement("42", map[string]string{"registro": "43"})
	assert.Error(t, err)
}
