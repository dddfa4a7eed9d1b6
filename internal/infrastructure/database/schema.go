package database

import (
	"context"
	"fmt"
)

// schema is applied on startup. Statements are idempotent so redeploys are
// safe without a separate migration step.
const schema = `
CREATE TABLE IF NOT EXISTS admin_accounts (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS profiles (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	title      TEXT NOT NULL,
	bio        TEXT NOT NULL,
	email      TEXT NOT NULL,
	github     TEXT NOT NULL DEFAULT '',
	linkedin   TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id          UUID PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	image       TEXT NOT NULL,
	link        TEXT NOT NULL DEFAULT '#',
	tech        TEXT NOT NULL DEFAULT '[]',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS skills (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS experience (
	id          UUID PRIMARY KEY,
	role        TEXT NOT NULL,
	company     TEXT NOT NULL,
	period      TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects (created_at);
CREATE INDEX IF NOT EXISTS idx_skills_created_at ON skills (created_at);
CREATE INDEX IF NOT EXISTS idx_experience_created_at ON experience (created_at);
`

// Migrate creates the tables the application needs.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}
