package repository

import (
	"errors"

	"barberlink-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrNotFound = errors.New("not found")

// moneyFrom converts a nullable numeric column into the zero-defaulting
// Money value used everywhere downstream.
func moneyFrom(f pgtype.Float8) domain.Money {
	if !f.Valid {
		return domain.Money{}
	}
	return domain.MoneyFromFloat(f.Float64)
}

func int64From(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}
