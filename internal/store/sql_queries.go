// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const secretsTable = "secrets"

// psql renders sqlite placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildListSecretsQuery() (string, []any, error) {
	return psql.Select("name").
		From(secretsTable).
		OrderBy("name").
		ToSql()
}

func buildReadSecretQuery(name string) (string, []any, error) {
	return psql.Select("ciphertext").
		From(secretsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildUpsertSecretQuery keeps created_at of an existing row and refreshes
// the ciphertext together with updated_at.
func buildUpsertSecretQuery(name string, ciphertext []byte, now time.Time) (string, []any, error) {
	return psql.Insert(secretsTable).
		Columns("name", "ciphertext", "created_at", "updated_at").
		Values(name, ciphertext, now, now).
		Suffix("ON CONFLICT(name) DO UPDATE SET ciphertext = excluded.ciphertext, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSecretQuery(name string) (string, []any, error) {
	return psql.Delete(secretsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
