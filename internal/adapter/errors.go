package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-legacy-vault/models"
)

// ErrEmptyAddress is returned when a remote store is configured without an
// address.
var ErrEmptyAddress = errors.New("empty record store address")

// StatusError is a store reply outside the expected status range. It
// matches [models.ErrAdapter] and, for 404, [models.ErrNotFound].
type StatusError struct {
	Op     string
	Status models.Status
}

func (e *StatusError) Error() string {
	detail := e.Status.Detail
	if detail == "" {
		detail = http.StatusText(e.Status.Code)
	}
	return fmt.Sprintf("%s: store replied %d: %s", e.Op, e.Status.Code, detail)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case models.ErrAdapter:
		return true
	case models.ErrNotFound:
		return e.Status.Code == http.StatusNotFound
	}
	return false
}

// CheckStatus returns nil when status carries one of the expected codes and
// a [*StatusError] otherwise.
func CheckStatus(op string, status models.Status, expected ...int) error {
	for _, code := range expected {
		if status.Code == code {
			return nil
		}
	}
	return &StatusError{Op: op, Status: status}
}

// Fault wraps a transport-level failure of op so that it matches
// [models.ErrAdapter].
func Fault(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", models.ErrAdapter, op, err)
}
