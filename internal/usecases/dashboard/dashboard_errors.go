package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownWidget     = errors.New("unknown widget kind")
	ErrInvalidPosition   = errors.New("invalid widget position")
	ErrUserKeyRequired   = errors.New("user key is required")
	ErrCorruptConfig     = errors.New("stored dashboard configuration is corrupt")
	ErrDatabaseOperation = errors.New("database operation error")
)

// DashboardError carrega o código de API junto do erro base
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
