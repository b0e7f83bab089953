// Package testhelper starts a shared PostgreSQL container for integration
// tests and applies the recipe schema to it.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// schema is the recipe catalog DDL, applied once to the shared container.
const schema = `
CREATE TABLE IF NOT EXISTS recipes (
    id               UUID PRIMARY KEY,
    title            TEXT NOT NULL CHECK (char_length(title) <= 100),
    title_normalized TEXT NOT NULL UNIQUE,
    description      TEXT,
    difficulty       TEXT NOT NULL CHECK (difficulty IN ('easy', 'medium', 'hard')),
    prep_minutes     INT  NOT NULL DEFAULT 0,
    cook_minutes     INT  NOT NULL DEFAULT 0,
    source           TEXT,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
    id          UUID PRIMARY KEY,
    recipe_id   UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
    name        TEXT NOT NULL,
    quantity    DOUBLE PRECISION,
    unit        TEXT,
    kind        TEXT NOT NULL,
    is_optional BOOLEAN NOT NULL DEFAULT FALSE,
    sort_order  INT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe_id ON recipe_ingredients(recipe_id);
CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_kind ON recipe_ingredients(kind);

CREATE TABLE IF NOT EXISTS recipe_instructions (
    id            UUID PRIMARY KEY,
    recipe_id     UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
    step_number   INT  NOT NULL,
    body          TEXT NOT NULL,
    prep_minutes  INT,
    cook_minutes  INT,
    temperature_f INT
);

CREATE INDEX IF NOT EXISTS idx_recipe_instructions_recipe_id ON recipe_instructions(recipe_id);

CREATE TABLE IF NOT EXISTS recipe_tags (
    recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
    tag       TEXT NOT NULL,
    PRIMARY KEY (recipe_id, tag)
);

CREATE INDEX IF NOT EXISTS idx_recipe_tags_tag ON recipe_tags(tag);
`

// SetupTestDB starts a shared PostgreSQL container (once for the entire test
// run), applies the schema, and returns a new pgxpool.Pool connected to it.
// The pool is closed via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainerAndApplySchema()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func startContainerAndApplySchema() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return "", fmt.Errorf("create pool: %w", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return "", fmt.Errorf("apply schema: %w", err)
	}

	return dsn, nil
}

// TruncateAll empties every recipe table between tests sharing the container.
func TruncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE recipes, recipe_ingredients, recipe_instructions, recipe_tags CASCADE`)
	if err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
}
