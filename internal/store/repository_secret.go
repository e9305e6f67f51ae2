package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type sqliteSecretStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteSecretStore opens (creating when needed) the sqlite database at
// dsn, applies migrations and returns a [SecretStore] on top of it.
func NewSQLiteSecretStore(ctx context.Context, dsn string, log *logger.Logger) (SecretStore, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, storageErr("sqlite connection", err)
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewSQLiteSecretStore").Msg("migration failed")
		_ = db.Close()
		return nil, storageErr("sqlite migration", err)
	}

	return NewSecretRepository(db, log), nil
}

// NewSecretRepository builds a [SecretStore] on an already migrated database.
func NewSecretRepository(db *DB, log *logger.Logger) SecretStore {
	return &sqliteSecretStore{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqliteSecretStore) List(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSecretsQuery()
	if err != nil {
		return nil, storageErr("list", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteSecretStore.List").Msg("failed to query secret names")
		return nil, storageErr("list", fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "sqliteSecretStore.List").Msg("failed to scan secret name")
			return nil, storageErr("list", fmt.Errorf("%w: %w", ErrScanningRows, err))
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "sqliteSecretStore.List").Msg("error iterating secret names")
		return nil, storageErr("list", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return names, nil
}

func (s *sqliteSecretStore) Read(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if err := ValidateName(name); err != nil {
		return nil, storageErr("read", err)
	}

	query, args, err := buildReadSecretQuery(name)
	if err != nil {
		return nil, storageErr("read", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var ciphertext []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&ciphertext)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(name)
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteSecretStore.Read").Str("name", name).Msg("failed to query secret")
		return nil, storageErr("read", fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return ciphertext, nil
}

func (s *sqliteSecretStore) Write(ctx context.Context, name string, ciphertext []byte) error {
	log := logger.FromContext(ctx)

	if err := ValidateName(name); err != nil {
		return storageErr("write", err)
	}

	query, args, err := buildUpsertSecretQuery(name, ciphertext, s.now().UTC())
	if err != nil {
		return storageErr("write", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqliteSecretStore.Write").Str("name", name).Msg("failed to upsert secret")
		return storageErr("write", fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}

func (s *sqliteSecretStore) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if err := ValidateName(name); err != nil {
		return storageErr("delete", err)
	}

	query, args, err := buildDeleteSecretQuery(name)
	if err != nil {
		return storageErr("delete", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var result sql.Result
	err = s.withRetry(ctx, func() error {
		var execErr error
		result, execErr = s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqliteSecretStore.Delete").Str("name", name).Msg("failed to delete secret")
		return storageErr("delete", fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageErr("delete", fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}
	if affected == 0 {
		return notFound(name)
	}

	return nil
}

func (s *sqliteSecretStore) Close() error {
	if err := s.DB.Close(); err != nil {
		return storageErr("close", err)
	}
	return nil
}
