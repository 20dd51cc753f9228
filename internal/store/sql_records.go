package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-legacy-vault/internal/adapter"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/models"
)

const recordsTable = "records"

var recordColumns = []string{
	"id", "author", "protocol", "protocol_path", "schema_uri", "data_format", "data", "date_created",
}

// sqlRecordStore keeps persisted records in the records table. Records are
// returned in insertion order, tracked by the seq column.
type sqlRecordStore struct {
	*records
	db *DB

	seqMu sync.Mutex
	seq   int64
}

// newSQLRecordStore loads the current insertion sequence from db.
func newSQLRecordStore(ctx context.Context, db *DB, author string, sender adapter.Sender) (*sqlRecordStore, error) {
	query, args, err := db.builder.Select("COALESCE(MAX(seq), 0)").From(recordsTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	if err = db.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &sqlRecordStore{
		records: newRecords(author, sender),
		db:      db,
		seq:     seq,
	}, nil
}

func (s *sqlRecordStore) nextSeq() int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.seq++
	return s.seq
}

// Create writes req as a new record. Records with Persist=false are held in
// the outbox and never reach the table.
func (s *sqlRecordStore) Create(ctx context.Context, req models.CreateRequest) (models.Status, models.RecordHandle, error) {
	log := logger.FromContext(ctx)

	status, record, err := s.newHandle(req)
	if err != nil || status.Code != 0 {
		return status, models.RecordHandle{}, err
	}

	if !req.Persist {
		s.hold(record)
		return models.NewStatus(models.StatusAccepted), record, nil
	}

	query, args, err := s.db.builder.Insert(recordsTable).
		Columns(append([]string{"seq"}, recordColumns...)...).
		Values(
			s.nextSeq(),
			s.author,
			record.Address.ProtocolID,
			record.Address.ProtocolPath,
			record.Address.SchemaURI,
			record.Address.DataFormat,
			record.Data,
			record.DateCreated.UnixNano(),
		).ToSql()
	if err != nil {
		return models.Status{}, models.RecordHandle{}, adapter.Fault("create record", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = s.db.execContext(ctx, query, args...); err != nil {
		if s.db.errorClassificator.Classify(err) == Conflict {
			return models.NewStatus(http.StatusConflict), models.RecordHandle{}, nil
		}
		log.Err(err).Str("func", "sqlRecordStore.Create").
			Str("protocol_path", record.Address.ProtocolPath).
			Msg("failed to insert record")
		return models.Status{}, models.RecordHandle{}, adapter.Fault("create record", fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return models.NewStatus(models.StatusAccepted), record, nil
}

// Query returns persisted records matching filter in insertion order.
func (s *sqlRecordStore) Query(ctx context.Context, filter models.QueryFilter) (models.Status, []models.RecordHandle, error) {
	log := logger.FromContext(ctx)

	where := sq.Eq{}
	if filter.ProtocolID != "" {
		where["protocol"] = filter.ProtocolID
	}
	if filter.SchemaURI != "" {
		where["schema_uri"] = filter.SchemaURI
	}
	if filter.DataFormat != "" {
		where["data_format"] = filter.DataFormat
	}
	if filter.From != "" {
		where["author"] = filter.From
	}

	query, args, err := s.db.builder.Select(recordColumns...).
		From(recordsTable).
		Where(where).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return models.Status{}, nil, adapter.Fault("query records", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordStore.Query").
			Str("schema", filter.SchemaURI).
			Msg("failed to query records")
		return models.Status{}, nil, adapter.Fault("query records", fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	result := make([]models.RecordHandle, 0, 16)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			return models.Status{}, nil, adapter.Fault("query records", fmt.Errorf("%w: %w", ErrScanningRow, scanErr))
		}
		result = append(result, record)
	}
	if err = rows.Err(); err != nil {
		return models.Status{}, nil, adapter.Fault("query records", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return models.NewStatus(models.StatusOK), result, nil
}

// Read returns the record with recordID, looking at the outbox first.
func (s *sqlRecordStore) Read(ctx context.Context, recordID string) (models.Status, models.RecordHandle, error) {
	if record, ok := s.held(recordID); ok {
		return models.NewStatus(models.StatusOK), record, nil
	}

	query, args, err := s.db.builder.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"id": recordID}).
		ToSql()
	if err != nil {
		return models.Status{}, models.RecordHandle{}, adapter.Fault("read record", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewStatus(http.StatusNotFound), models.RecordHandle{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqlRecordStore.Read").
			Str("record_id", recordID).
			Msg("failed to read record")
		return models.Status{}, models.RecordHandle{}, adapter.Fault("read record", fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	return models.NewStatus(models.StatusOK), record, nil
}

// Update replaces the content of record in place.
func (s *sqlRecordStore) Update(ctx context.Context, record models.RecordHandle, data []byte) (models.Status, error) {
	if s.replaceHeld(record.ID, data) {
		return models.NewStatus(models.StatusAccepted), nil
	}

	query, args, err := s.db.builder.Update(recordsTable).
		Set("data", data).
		Where(sq.Eq{"id": record.ID}).
		ToSql()
	if err != nil {
		return models.Status{}, adapter.Fault("update record", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	return s.execAffecting(ctx, "update record", record.ID, query, args)
}

// Delete removes the record with recordID from the outbox or the table.
func (s *sqlRecordStore) Delete(ctx context.Context, recordID string) (models.Status, error) {
	if s.release(recordID) {
		return models.NewStatus(models.StatusAccepted), nil
	}

	query, args, err := s.db.builder.Delete(recordsTable).
		Where(sq.Eq{"id": recordID}).
		ToSql()
	if err != nil {
		return models.Status{}, adapter.Fault("delete record", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	return s.execAffecting(ctx, "delete record", recordID, query, args)
}

// Send forwards record to the store of targetDID.
func (s *sqlRecordStore) Send(ctx context.Context, record models.RecordHandle, targetDID string) (models.Status, error) {
	return s.send(ctx, record, targetDID)
}

// ConfigureProtocol installs def; subsequent writes must use its paths.
func (s *sqlRecordStore) ConfigureProtocol(_ context.Context, def models.ProtocolDefinition) (models.Status, error) {
	return s.configure(def), nil
}

// Close closes the underlying database.
func (s *sqlRecordStore) Close() error {
	return s.db.Close()
}

func (s *sqlRecordStore) execAffecting(ctx context.Context, op, recordID, query string, args []any) (models.Status, error) {
	result, err := s.db.execContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqlRecordStore.execAffecting").
			Str("op", op).
			Str("record_id", recordID).
			Msg("statement failed")
		return models.Status{}, adapter.Fault(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Status{}, adapter.Fault(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}
	if affected == 0 {
		return models.NewStatus(http.StatusNotFound), nil
	}

	return models.NewStatus(models.StatusAccepted), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.RecordHandle, error) {
	var (
		record  models.RecordHandle
		author  string
		created int64
	)

	err := row.Scan(
		&record.ID,
		&author,
		&record.Address.ProtocolID,
		&record.Address.ProtocolPath,
		&record.Address.SchemaURI,
		&record.Address.DataFormat,
		&record.Data,
		&created,
	)
	if err != nil {
		return models.RecordHandle{}, err
	}

	record.DateCreated = time.Unix(0, created).UTC()
	record.Persisted = true
	return record, nil
}
