package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-legacy-vault/models"
)

// memoryRecordStore keeps records in process memory. It backs the ":memory:"
// DSN and the service tests.
type memoryRecordStore struct {
	*records

	mu    sync.RWMutex
	order []string
	byID  map[string]models.RecordHandle
}

func newMemoryRecordStore(author string, sender Sender) *memoryRecordStore {
	return &memoryRecordStore{
		records: newRecords(author, sender),
		byID:    make(map[string]models.RecordHandle),
	}
}

func (m *memoryRecordStore) Create(_ context.Context, req models.CreateRequest) (models.Status, models.RecordHandle, error) {
	status, record, err := m.newHandle(req)
	if err != nil || status.Code != 0 {
		return status, models.RecordHandle{}, err
	}

	if !req.Persist {
		m.hold(record)
		return models.NewStatus(models.StatusAccepted), record, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byID[record.ID]; exists {
		return models.NewStatus(http.StatusConflict), models.RecordHandle{}, nil
	}
	m.byID[record.ID] = record
	m.order = append(m.order, record.ID)

	return models.NewStatus(models.StatusAccepted), record, nil
}

func (m *memoryRecordStore) Query(_ context.Context, filter models.QueryFilter) (models.Status, []models.RecordHandle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.RecordHandle, 0, len(m.order))
	for _, id := range m.order {
		record := m.byID[id]
		if matches(filter, m.author, record.Address) {
			result = append(result, cloneRecord(record))
		}
	}

	return models.NewStatus(models.StatusOK), result, nil
}

func (m *memoryRecordStore) Read(_ context.Context, recordID string) (models.Status, models.RecordHandle, error) {
	if record, ok := m.held(recordID); ok {
		return models.NewStatus(models.StatusOK), record, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.byID[recordID]
	if !ok {
		return models.NewStatus(http.StatusNotFound), models.RecordHandle{}, nil
	}

	return models.NewStatus(models.StatusOK), cloneRecord(record), nil
}

func (m *memoryRecordStore) Update(_ context.Context, record models.RecordHandle, data []byte) (models.Status, error) {
	if m.replaceHeld(record.ID, data) {
		return models.NewStatus(models.StatusAccepted), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[record.ID]
	if !ok {
		return models.NewStatus(http.StatusNotFound), nil
	}
	stored.Data = append([]byte(nil), data...)
	m.byID[record.ID] = stored

	return models.NewStatus(models.StatusAccepted), nil
}

func (m *memoryRecordStore) Delete(_ context.Context, recordID string) (models.Status, error) {
	if m.release(recordID) {
		return models.NewStatus(models.StatusAccepted), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[recordID]; !ok {
		return models.NewStatus(http.StatusNotFound), nil
	}
	delete(m.byID, recordID)
	for i, id := range m.order {
		if id == recordID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return models.NewStatus(models.StatusAccepted), nil
}

func (m *memoryRecordStore) Send(ctx context.Context, record models.RecordHandle, targetDID string) (models.Status, error) {
	return m.send(ctx, record, targetDID)
}

func (m *memoryRecordStore) ConfigureProtocol(_ context.Context, def models.ProtocolDefinition) (models.Status, error) {
	return m.configure(def), nil
}

func (m *memoryRecordStore) Close() error {
	return nil
}

func cloneRecord(record models.RecordHandle) models.RecordHandle {
	record.Data = append([]byte(nil), record.Data...)
	return record
}
