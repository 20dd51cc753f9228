package store

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/ipfs/go-cid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-legacy-vault/internal/config"
	"github.com/MKhiriev/go-legacy-vault/internal/logger"
	"github.com/MKhiriev/go-legacy-vault/internal/mock"
	"github.com/MKhiriev/go-legacy-vault/internal/protocol"
	"github.com/MKhiriev/go-legacy-vault/migrations"
	"github.com/MKhiriev/go-legacy-vault/models"
)

// ── helpers ──

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}, sqlMock
}

func newTestSQLStore(t *testing.T, sender Sender) (*sqlRecordStore, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock := newMockDB(t)

	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(seq), 0) FROM records")).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(7)))

	s, err := newSQLRecordStore(context.Background(), db, "did:key:z6MkOwner", sender)
	require.NoError(t, err)
	return s, sqlMock
}

func secretRequest(persist bool) models.CreateRequest {
	return models.CreateRequest{
		Data:    []byte(`{"group":"Will"}`),
		Address: protocol.AddressFor(models.Secret),
		Persist: persist,
	}
}

var recordRowColumns = []string{
	"id", "author", "protocol", "protocol_path", "schema_uri", "data_format", "data", "date_created",
}

// ── record ids ──

func TestNewRecordID_IsRawCID(t *testing.T) {
	id, err := newRecordID("nonce", []byte("content"))
	require.NoError(t, err)

	parsed, err := cid.Decode(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(cid.Raw), parsed.Type())
	assert.Equal(t, uint64(1), parsed.Version())
}

func TestNewRecordID_NonceMakesUnique(t *testing.T) {
	a, err := newRecordID("n1", []byte("same"))
	require.NoError(t, err)
	b, err := newRecordID("n2", []byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// ── error classification ──

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Conflict, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Conflict, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

// ── SQL store (sqlmock) ──

func TestSQLRecordStore_Create(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)
	req := secretRequest(true)

	sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).
		WithArgs(int64(8), sqlmock.AnyArg(), "did:key:z6MkOwner", req.Address.ProtocolID,
			req.Address.ProtocolPath, req.Address.SchemaURI, req.Address.DataFormat, req.Data, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	status, record, err := s.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)
	assert.NotEmpty(t, record.ID)
	assert.True(t, record.Persisted)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSQLRecordStore_Create_Conflict(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)

	sqlMock.ExpectExec("INSERT INTO records").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	status, _, err := s.Create(context.Background(), secretRequest(true))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, status.Code)
}

func TestSQLRecordStore_Create_Fault(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)

	sqlMock.ExpectExec("INSERT INTO records").WillReturnError(errors.New("disk full"))

	_, _, err := s.Create(context.Background(), secretRequest(true))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAdapter)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLRecordStore_Create_IncompleteDescriptor(t *testing.T) {
	s, _ := newTestSQLStore(t, nil)

	status, _, err := s.Create(context.Background(), models.CreateRequest{Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status.Code)
}

func TestSQLRecordStore_Create_NotPersistedStaysOutOfTable(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)

	status, record, err := s.Create(context.Background(), secretRequest(false))
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)
	assert.False(t, record.Persisted)

	status, held, err := s.Read(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, status.Code)
	assert.Equal(t, record.Data, held.Data)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSQLRecordStore_Query(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)
	addr := protocol.AddressFor(models.Credential)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows(recordRowColumns).
		AddRow("a", "did:key:z6MkOwner", addr.ProtocolID, addr.ProtocolPath, addr.SchemaURI, addr.DataFormat, []byte("t1"), created.UnixNano()).
		AddRow("b", "did:key:z6MkOwner", addr.ProtocolID, addr.ProtocolPath, addr.SchemaURI, addr.DataFormat, []byte("t2"), created.UnixNano())
	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT id, author, protocol, protocol_path, schema_uri, data_format, data, date_created FROM records WHERE")).
		WillReturnRows(rows)

	status, records, err := s.Query(context.Background(), protocol.Filter(models.Credential))
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, status.Code)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "t2", records[1].Text())
	assert.True(t, records[0].DateCreated.Equal(created))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSQLRecordStore_Query_Fault(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)
	sqlMock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, _, err := s.Query(context.Background(), protocol.Filter(models.Secret))
	assert.ErrorIs(t, err, models.ErrAdapter)
}

func TestSQLRecordStore_Read_NotFound(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)
	sqlMock.ExpectQuery("SELECT").WithArgs("missing").WillReturnRows(sqlmock.NewRows(recordRowColumns))

	status, _, err := s.Read(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status.Code)
}

func TestSQLRecordStore_Update(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)

	sqlMock.ExpectExec(regexp.QuoteMeta("UPDATE records SET data = ? WHERE id = ?")).
		WithArgs([]byte("new"), "a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("UPDATE records").
		WithArgs([]byte("new"), "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	status, err := s.Update(context.Background(), models.RecordHandle{ID: "a"}, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)

	status, err = s.Update(context.Background(), models.RecordHandle{ID: "gone"}, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status.Code)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSQLRecordStore_Delete(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)

	sqlMock.ExpectExec(regexp.QuoteMeta("DELETE FROM records WHERE id = ?")).
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, err := s.Delete(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSQLRecordStore_Delete_RetriesBusy(t *testing.T) {
	s, sqlMock := newTestSQLStore(t, nil)

	sqlMock.ExpectExec("DELETE FROM records").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	sqlMock.ExpectExec("DELETE FROM records").WillReturnResult(sqlmock.NewResult(0, 1))

	status, err := s.Delete(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

// ── sending ──

func TestSend_WithoutForwarder(t *testing.T) {
	s := newMemoryRecordStore("", nil)

	_, err := s.Send(context.Background(), models.RecordHandle{ID: "a"}, "did:key:z6MkBen")
	assert.ErrorIs(t, err, ErrNoForwarder)
	assert.ErrorIs(t, err, models.ErrAdapter)
}

func TestSend_ReleasesHeldRecordOnAccept(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock.NewMockRecordStore(ctrl)
	s := newMemoryRecordStore("", sender)
	ctx := context.Background()

	_, record, err := s.Create(ctx, secretRequest(false))
	require.NoError(t, err)

	sender.EXPECT().Send(gomock.Any(), record, "did:key:z6MkBen").
		Return(models.NewStatus(models.StatusAccepted), nil)

	status, err := s.Send(ctx, record, "did:key:z6MkBen")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)

	status, _, err = s.Read(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status.Code)
}

func TestSend_KeepsHeldRecordOnRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock.NewMockRecordStore(ctrl)
	s := newMemoryRecordStore("", sender)
	ctx := context.Background()

	_, record, err := s.Create(ctx, secretRequest(false))
	require.NoError(t, err)

	sender.EXPECT().Send(gomock.Any(), record, "did:key:z6MkBen").
		Return(models.NewStatus(http.StatusBadGateway), nil)

	status, err := s.Send(ctx, record, "did:key:z6MkBen")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, status.Code)

	status, _, err = s.Read(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, status.Code)
}

// ── memory store ──

func TestMemoryRecordStore_InsertionOrderAndFilter(t *testing.T) {
	s := newMemoryRecordStore("did:key:z6MkOwner", nil)
	ctx := context.Background()

	var ids []string
	for _, kind := range []models.RecordKind{models.Secret, models.Credential, models.Secret} {
		_, record, err := s.Create(ctx, models.CreateRequest{
			Data: []byte(kind.String()), Address: protocol.AddressFor(kind), Persist: true,
		})
		require.NoError(t, err)
		ids = append(ids, record.ID)
	}

	_, secrets, err := s.Query(ctx, protocol.Filter(models.Secret))
	require.NoError(t, err)
	require.Len(t, secrets, 2)
	assert.Equal(t, ids[0], secrets[0].ID)
	assert.Equal(t, ids[2], secrets[1].ID)

	filter := protocol.Filter(models.Secret)
	filter.From = "did:key:z6MkSomeoneElse"
	_, none, err := s.Query(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryRecordStore_UpdateDelete(t *testing.T) {
	s := newMemoryRecordStore("", nil)
	ctx := context.Background()

	_, record, err := s.Create(ctx, secretRequest(true))
	require.NoError(t, err)

	status, err := s.Update(ctx, record, []byte("v2"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)

	_, read, err := s.Read(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", read.Text())

	status, err = s.Delete(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)

	status, err = s.Delete(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status.Code)
}

func TestConfigureProtocol_RejectsUnknownPaths(t *testing.T) {
	s := newMemoryRecordStore("", nil)
	ctx := context.Background()

	status, err := s.ConfigureProtocol(ctx, protocol.Definition())
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)

	status, _, err = s.Create(ctx, secretRequest(true))
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.Code)

	bad := secretRequest(true)
	bad.Address.ProtocolPath = "diary"
	status, _, err = s.Create(ctx, bad)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status.Code)
}

// ── SQLite end to end ──

func TestNewRecordStore_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "vault.db")

	s, err := NewRecordStore(ctx, config.DB{DSN: dsn}, "did:key:z6MkOwner", nil, logger.Nop())
	require.NoError(t, err)

	_, first, err := s.Create(ctx, secretRequest(true))
	require.NoError(t, err)
	_, second, err := s.Create(ctx, secretRequest(true))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// reopen: records survive and order continues
	s, err = NewRecordStore(ctx, config.DB{DSN: dsn}, "did:key:z6MkOwner", nil, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, third, err := s.Create(ctx, secretRequest(true))
	require.NoError(t, err)

	_, records, err := s.Query(ctx, protocol.Filter(models.Secret))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{records[0].ID, records[1].ID, records[2].ID})
	assert.Equal(t, first.Data, records[0].Data)
}

func TestNewRecordStore_Memory(t *testing.T) {
	s, err := NewRecordStore(context.Background(), config.DB{DSN: MemoryDSN}, "", nil, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memoryRecordStore{}, s)
	assert.NoError(t, s.Close())
}
