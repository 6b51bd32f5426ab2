package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// nullIfEmpty maps "" to SQL NULL so optional unique columns accept many blanks.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// encodeCoffeeWeights serialises a per-type weight map for a TEXT column.
// Decimals are written as JSON strings to keep them exact.
func encodeCoffeeWeights(m map[model.CoffeeType]decimal.Decimal) (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode coffee weights: %w", err)
	}
	return string(b), nil
}

func decodeCoffeeWeights(s string) (map[model.CoffeeType]decimal.Decimal, error) {
	m := make(map[model.CoffeeType]decimal.Decimal, len(model.CoffeeTypes))
	if s == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("failed to decode coffee weights: %w", err)
	}
	return m, nil
}
