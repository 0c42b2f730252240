package repository

import (
	"context"
	"errors"

	"barberlink-backend/internal/db"
	"barberlink-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ThemeRepository struct {
	DB *db.Postgres
}

func (r ThemeRepository) Get(ctx context.Context, barberID int64) (*domain.ThemeSettings, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT business_name, tagline, primary_color, accent_color, font_family, logo_url, show_prices, show_reviews, updated_at
		FROM theme_settings
		WHERE barber_id=$1
	`, barberID)
	var t domain.ThemeSettings
	if err := row.Scan(
		&t.BusinessName, &t.Tagline, &t.PrimaryColor, &t.AccentColor, &t.FontFamily, &t.LogoURL, &t.ShowPrices, &t.ShowReviews, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	t.BarberID = &barberID
	return &t, nil
}

func (r ThemeRepository) Save(ctx context.Context, barberID int64, t domain.ThemeSettings) (*domain.ThemeSettings, error) {
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO theme_settings (barber_id, business_name, tagline, primary_color, accent_color, font_family, logo_url, show_prices, show_reviews, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now())
		ON CONFLICT (barber_id) DO UPDATE SET
			business_name=EXCLUDED.business_name,
			tagline=EXCLUDED.tagline,
			primary_color=EXCLUDED.primary_color,
			accent_color=EXCLUDED.accent_color,
			font_family=EXCLUDED.font_family,
			logo_url=EXCLUDED.logo_url,
			show_prices=EXCLUDED.show_prices,
			show_reviews=EXCLUDED.show_reviews,
			updated_at=now()
		RETURNING business_name, tagline, primary_color, accent_color, font_family, logo_url, show_prices, show_reviews, updated_at
	`, barberID, t.BusinessName, t.Tagline, t.PrimaryColor, t.AccentColor, t.FontFamily, t.LogoURL, t.ShowPrices, t.ShowReviews).Scan(
		&t.BusinessName, &t.Tagline, &t.PrimaryColor, &t.AccentColor, &t.FontFamily, &t.LogoURL, &t.ShowPrices, &t.ShowReviews, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.BarberID = &barberID
	return &t, nil
}
