package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL.
// La tabla guarda una sola fila.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la fila de configuración, o nil si todavía no existe.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT id, currency, language, date_format, decimal_places, extra_params, created_at, updated_at
		FROM settings LIMIT 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.Currency, &s.Language, &s.DateFormat, &s.DecimalPlaces,
		&s.ExtraParams, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Create inserta la fila de configuración.
func (r *SettingsRepo) Create(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, currency, language, date_format, decimal_places, extra_params, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.Currency, settings.Language, settings.DateFormat,
		settings.DecimalPlaces, settings.ExtraParams, settings.CreatedAt, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Update actualiza la fila de configuración.
func (r *SettingsRepo) Update(settings *entity.Settings) error {
	query := `
		UPDATE settings SET currency = $2, language = $3, date_format = $4, decimal_places = $5, extra_params = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.Currency, settings.Language, settings.DateFormat,
		settings.DecimalPlaces, settings.ExtraParams, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
