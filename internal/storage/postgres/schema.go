package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
create extension if not exists "pgcrypto";

create table if not exists users (
    id            uuid primary key default gen_random_uuid(),
    email         text not null unique,
    name          text not null default '',
    password_hash text not null,
    role          text not null default 'USER',
    created_at    timestamptz not null default now()
);

create table if not exists projects (
    id                  uuid primary key,
    title               text not null,
    description         text,
    business_value      text not null,
    impact_score        int not null,
    urgency_score       int not null,
    effort_size         text not null,
    calculated_priority numeric(10,2) not null,
    status              text not null default 'draft',
    author_id           uuid not null references users(id),
    created_at          timestamptz not null default now()
);

create index if not exists projects_created_at_idx on projects (created_at desc);
create index if not exists projects_status_idx on projects (status);
`

// EnsureSchema creates the tables if they do not exist yet. Used by the seed
// command and integration tests; production deploys run it once at startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
