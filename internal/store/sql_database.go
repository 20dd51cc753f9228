package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/migrations"
)

const (
	maxRetries  = 3
	retryPeriod = 20 * time.Millisecond
)

// DB is an open record database together with its dialect specifics.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded records schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// execContext runs a statement, retrying errors the dialect classifies as
// transient.
func (db *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryPeriod))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		result, err = db.DB.ExecContext(ctx, query, args...)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "DB.execContext").
				Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})

	return result, err
}
