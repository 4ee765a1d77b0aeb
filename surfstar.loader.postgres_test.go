package surfstar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	assert.Equal(t, PostgresDefaultMaxOpenConns, cfg.MaxOpenConns)
	assert.Equal(t, PostgresDefaultMaxIdleConns, cfg.MaxIdleConns)
	assert.Equal(t, PostgresDefaultConnMaxLifetime, cfg.ConnMaxLifetime)
	assert.Equal(t, PostgresDefaultConnMaxIdleTime, cfg.ConnMaxIdleTime)
	assert.Equal(t, PostgresTablePrefix, cfg.TablePrefix)
	assert.Equal(t, PostgresDefaultQueryTimeout, cfg.QueryTimeout)
	assert.False(t, cfg.AutoMigrate)
	assert.Empty(t, cfg.ConnectionString)
}

func TestPostgresConfig_WithDefaults(t *testing.T) {
	cfg := PostgresConfig{
		ConnectionString: "postgres://localhost/test?sslmode=disable",
		MaxOpenConns:     3,
		TablePrefix:      "custom_",
	}.withDefaults()

	assert.Equal(t, 3, cfg.MaxOpenConns)
	assert.Equal(t, "custom_", cfg.TablePrefix)
	assert.Equal(t, PostgresDefaultMaxIdleConns, cfg.MaxIdleConns)
	assert.Equal(t, PostgresDefaultQueryTimeout, cfg.QueryTimeout)
	assert.Equal(t, "postgres://localhost/test?sslmode=disable", cfg.ConnectionString)
}

func TestPostgresLoader_EmptyConnectionString(t *testing.T) {
	_, err := NewPostgresLoader(PostgresConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPostgresEmptyConnString)
}

func TestPostgresLoader_InvalidConnectionString(t *testing.T) {
	cfg := PostgresConfig{
		ConnectionString: "invalid://not-a-valid-connection-string",
	}

	_, err := NewPostgresLoader(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPostgresConnectionFailed)

	var storageErr *StorageError
	assert.True(t, errors.As(err, &storageErr))
}

func TestPostgresLoader_TableNames(t *testing.T) {
	loader := &PostgresLoader{config: PostgresConfig{TablePrefix: "app_"}}

	assert.Equal(t, "app_templates", loader.tableName())
	assert.Equal(t, "app_schema_migrations", loader.migrationsTableName())

	migrations := loader.getMigrations()
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS app_templates")
}

func TestStorageError(t *testing.T) {
	cause := errors.New("timeout")
	err := &StorageError{Message: ErrMsgPostgresQueryFailed, Path: "a.tpl", Cause: cause}

	assert.Equal(t, ErrMsgPostgresQueryFailed+": a.tpl: timeout", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrMsgPostgresAlreadyClosed, (&StorageError{Message: ErrMsgPostgresAlreadyClosed}).Error())
}
