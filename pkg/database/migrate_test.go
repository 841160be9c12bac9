package database

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrate struct {
	upErr      error
	downErr    error
	version    uint
	dirty      bool
	versionErr error
	closed     bool
}

func (f *fakeMigrate) Up() error   { return f.upErr }
func (f *fakeMigrate) Down() error { return f.downErr }
func (f *fakeMigrate) Version() (uint, bool, error) {
	return f.version, f.dirty, f.versionErr
}
func (f *fakeMigrate) Close() (error, error) {
	f.closed = true
	return nil, nil
}

func TestMigrateURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@h:5432/db?sslmode=disable":   "pgx5://u:p@h:5432/db?sslmode=disable",
		"postgresql://u:p@h:5432/db?sslmode=disable": "pgx5://u:p@h:5432/db?sslmode=disable",
		"pgx5://u:p@h/db":                            "pgx5://u:p@h/db",
	}
	for in, want := range tests {
		assert.Equal(t, want, migrateURL(in), in)
	}
}

func TestMigrator_Up(t *testing.T) {
	t.Run("no change is not an error", func(t *testing.T) {
		m := &Migrator{m: &fakeMigrate{upErr: migrate.ErrNoChange}}
		assert.NoError(t, m.Up())
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		m := &Migrator{m: &fakeMigrate{upErr: boom}}
		assert.ErrorIs(t, m.Up(), boom)
	})
}

func TestMigrator_Down(t *testing.T) {
	m := &Migrator{m: &fakeMigrate{downErr: migrate.ErrNoChange}}
	assert.NoError(t, m.Down())
}

func TestMigrator_Version(t *testing.T) {
	m := &Migrator{m: &fakeMigrate{versionErr: migrate.ErrNilVersion}}
	v, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.False(t, dirty)

	m = &Migrator{m: &fakeMigrate{version: 2}}
	v, _, err = m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)
}

func TestMigrator_Close(t *testing.T) {
	f := &fakeMigrate{}
	require.NoError(t, (&Migrator{m: f}).Close())
	assert.True(t, f.closed)
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
