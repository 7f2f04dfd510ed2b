package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseDate interpreta datas no formato yyyy-mm-dd; string vazia retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseOptionalInt converte um parâmetro de query opcional
func ParseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

// SplitCSV separa uma lista separada por vírgulas, ignorando itens vazios
func SplitCSV(value string) []string {
	if value == "" {
		return nil
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
