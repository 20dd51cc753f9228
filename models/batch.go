package models

// TransferOutcome is the per-record result of a bulk transfer.
type TransferOutcome struct {
	RecordID string `json:"record_id"`
	Status   int    `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Failed reports whether the record was not delivered.
func (o TransferOutcome) Failed() bool {
	return o.Error != "" || o.Status != StatusAccepted
}

// BatchResult is the result of a best-effort bulk operation. Status is always
// [StatusAccepted]; Items carries one outcome per record so that callers who
// need full visibility can inspect failures.
type BatchResult struct {
	Status int               `json:"status"`
	Items  []TransferOutcome `json:"items"`
}

// Failures returns the outcomes that were not delivered.
func (b BatchResult) Failures() []TransferOutcome {
	var failed []TransferOutcome
	for _, item := range b.Items {
		if item.Failed() {
			failed = append(failed, item)
		}
	}
	return failed
}
