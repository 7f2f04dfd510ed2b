// Package period concentra a aritmética de calendário usada pelas metas mensais.
package period

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

var (
	ErrDivisionByZero = errors.New("working days in month is zero")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrInvalidYear    = fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
)

// Validate verifica se ano e mês formam um período aceito
func Validate(year, month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if year < MinYear || year > MaxYear {
		return ErrInvalidYear
	}
	return nil
}

// DaysInMonth retorna a quantidade de dias do mês (considera anos bissextos)
func DaysInMonth(year, month int) int {
	// dia 0 do mês seguinte é o último dia do mês informado
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WorkingDays aproxima os dias úteis do mês: floor(dias * 5 / 7)
func WorkingDays(daysInMonth int) int {
	if daysInMonth <= 0 {
		return 0
	}
	return daysInMonth * 5 / 7
}

// DailyTarget divide o valor da meta pelos dias úteis
func DailyTarget(target decimal.Decimal, workingDays int) (decimal.Decimal, error) {
	if workingDays == 0 {
		return decimal.Zero, ErrDivisionByZero
	}
	return target.Div(decimal.NewFromInt(int64(workingDays))), nil
}

// Previous retorna o período imediatamente anterior
func Previous(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// Bounds retorna o primeiro e o último dia do período no fuso informado
func Bounds(year, month int, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// ElapsedDays calcula os dias decorridos e restantes do período na data asOf.
// Antes do período nada decorreu; depois dele o mês inteiro decorreu.
func ElapsedDays(year, month int, asOf time.Time) (elapsed int, remaining int) {
	days := DaysInMonth(year, month)
	first, last := Bounds(year, month, asOf.Location())
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())

	switch {
	case day.Before(first):
		return 0, days
	case day.After(last):
		return days, 0
	default:
		return day.Day(), days - day.Day()
	}
}

// Label formata o período como AAAA-MM
func Label(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
