package postgres

import (
	"context"
	"fmt"
)

// schema tablas del backend de desarrollo. Las referencias usan ON DELETE RESTRICT:
// una categoría con subcategorías no se puede borrar.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		full_name     TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (lower(email))`,
	`CREATE TABLE IF NOT EXISTS categories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL,
		image_url   TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS subcategories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
		status      TEXT NOT NULL,
		image_url   TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		category_id    TEXT NOT NULL,
		subcategory_id TEXT NOT NULL,
		status         TEXT NOT NULL,
		image          TEXT NOT NULL DEFAULT '',
		description    TEXT NOT NULL DEFAULT '',
		price          NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS images (
		name         TEXT PRIMARY KEY,
		filename     TEXT NOT NULL,
		content_type TEXT NOT NULL,
		data         BYTEA NOT NULL
	)`,
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}
