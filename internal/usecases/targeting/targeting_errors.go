package targeting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/booker-targets-api/pkg/period"
)

// Erros específicos para o contexto de metas
var (
	// Erros de validação
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidPeriod       = errors.New("invalid period")
	ErrOrderBookerRequired = errors.New("order booker ID is required")
	ErrTargetIDRequired    = errors.New("target ID is required")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")

	// Erros de estado
	ErrNotFound        = errors.New("monthly target not found")
	ErrDuplicatePeriod = errors.New("monthly target already exists for order booker and period")
	ErrDivisionByZero  = period.ErrDivisionByZero

	// Erros de infraestrutura
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating target ID")
)

// TargetError é um erro com contexto adicional para metas
type TargetError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	TargetID string // ID da meta envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *TargetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

func NewTargetError(err error, code string, details string) *TargetError {
	return &TargetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewTargetErrorWithID(err error, code string, targetID string, details string) *TargetError {
	return &TargetError{
		Err:      err,
		Code:     code,
		TargetID: targetID,
		Details:  details,
	}
}

// BatchError indica em qual item um lote parou. Em modo atômico nada foi gravado;
// em modo sequencial os itens anteriores a Index permanecem gravados.
type BatchError struct {
	Operation string
	Index     int
	Committed int
	Atomic    bool
	Err       error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %s failed at item %d (%d committed): %v", e.Operation, e.Index, e.Committed, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
