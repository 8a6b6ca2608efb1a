// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package journal records CLI operations in an optional Postgres table so a
// team sharing a cluster can see who installed, upgraded or removed what.
// Messages are masked before they are written; payloads are never stored.
package journal

import (
	"context"
	"fmt"
	"time"

	"helmbridge/cli/internal/logging"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Table is the journal table name.
const Table = "helmbridge_journal"

const createTable = `CREATE TABLE IF NOT EXISTS ` + Table + ` (
	id          uuid PRIMARY KEY,
	operation   text        NOT NULL,
	target      text        NOT NULL,
	failed      boolean     NOT NULL,
	message     text        NOT NULL DEFAULT '',
	started_at  timestamptz NOT NULL,
	duration_ms bigint      NOT NULL
)`

// Entry is one recorded operation.
type Entry struct {
	ID        uuid.UUID
	Operation string
	// Target is the release, repository or registry the operation acted on.
	Target    string
	Failed    bool
	Message   string
	StartedAt time.Time
	Duration  time.Duration
}

// NewEntry builds an entry for an operation that started at start and
// finished now with err.
func NewEntry(operation, target string, start time.Time, err error) Entry {
	e := Entry{
		ID:        uuid.New(),
		Operation: operation,
		Target:    target,
		StartedAt: start.UTC(),
		Duration:  time.Since(start),
	}
	if err != nil {
		e.Failed = true
		e.Message = logging.Mask(err.Error())
	}
	return e
}

// Journal writes entries to Postgres.
type Journal struct {
	pool *pgxpool.Pool
}

// Open connects to dsn and creates the journal table if missing.
func Open(ctx context.Context, dsn string) (*Journal, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse journal dsn: %s", logging.Mask(err.Error()))
	}
	cfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect journal: %w", err)
	}
	if _, err := pool.Exec(ctx, createTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create journal table: %w", err)
	}
	return &Journal{pool: pool}, nil
}

// Record stores e.
func (j *Journal) Record(ctx context.Context, e Entry) error {
	_, err := j.pool.Exec(ctx,
		`INSERT INTO `+Table+` (id, operation, target, failed, message, started_at, duration_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Operation, e.Target, e.Failed, logging.Mask(e.Message), e.StartedAt, e.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", e.Operation, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.pool.Query(ctx,
		`SELECT id, operation, target, failed, message, started_at, duration_ms
		 FROM `+Table+` ORDER BY started_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var (
			e  Entry
			ms int64
		)
		if err := row.Scan(&e.ID, &e.Operation, &e.Target, &e.Failed, &e.Message, &e.StartedAt, &ms); err != nil {
			return Entry{}, err
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return entries, nil
}

// Close releases the connection pool.
func (j *Journal) Close() {
	if j != nil && j.pool != nil {
		j.pool.Close()
	}
}
