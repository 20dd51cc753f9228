// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local record stores behind the
// [adapter.RecordStore] contract: a SQL store for SQLite and PostgreSQL and
// an in-memory store. Records created with Persist=false are held in an
// outbox until they are sent. Sending is delegated to an injected
// [adapter.Sender], normally the remote relay.
package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-legacy-vault/internal/adapter"
	"github.com/MKhiriev/go-legacy-vault/internal/config"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
)

// MemoryDSN selects the in-memory store.
const MemoryDSN = ":memory:"

// Sender is the forwarding capability a local store delegates to.
type Sender = adapter.Sender

// RecordStore is a local record store. It implements the full adapter
// contract, accepts a protocol definition and owns resources released by
// Close.
type RecordStore interface {
	adapter.RecordStore
	adapter.ProtocolConfigurer
	io.Closer
}

// NewRecordStore opens the store selected by cfg.DSN: postgres:// and
// postgresql:// select PostgreSQL, [MemoryDSN] the in-memory store and
// anything else an SQLite file. SQL stores are migrated before use.
// Records written locally are attributed to author. sender may be nil, in
// which case Send fails with [ErrNoForwarder].
func NewRecordStore(ctx context.Context, cfg config.DB, author string, sender Sender, log *logger.Logger) (RecordStore, error) {
	if cfg.DSN == MemoryDSN {
		log.Info().Str("func", "NewRecordStore").Msg("using in-memory record store")
		return newMemoryRecordStore(author, sender), nil
	}

	var (
		db  *DB
		err error
	)
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate record store: %w", err)
	}

	s, err := newSQLRecordStore(ctx, db, author, sender)
	if err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}
