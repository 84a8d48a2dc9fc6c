package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

// SettingsUseCase configuración global (fila única, lazy-create con
// valores por defecto).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración; la primera lectura la crea con defaults.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		now := time.Now()
		settings = &entity.Settings{
			ID:            uuid.New().String(),
			Currency:      "BRL",
			Language:      "pt-BR",
			DateFormat:    "DD/MM/YYYY",
			DecimalPlaces: 2,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.repo.Create(settings); err != nil {
			return nil, err
		}
	}
	return settingsToResponse(settings), nil
}

// Update actualiza la configuración; si no existe todavía la crea.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.Currency == "" || in.Language == "" || in.DateFormat == "" || in.DecimalPlaces == nil {
		return nil, domain.ErrInvalidInput
	}
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if settings == nil {
		settings = &entity.Settings{
			ID:        uuid.New().String(),
			CreatedAt: now,
		}
		settings.Currency = in.Currency
		settings.Language = in.Language
		settings.DateFormat = in.DateFormat
		settings.DecimalPlaces = *in.DecimalPlaces
		settings.ExtraParams = in.ExtraParams
		settings.UpdatedAt = now
		if err := uc.repo.Create(settings); err != nil {
			return nil, err
		}
		return settingsToResponse(settings), nil
	}
	settings.Currency = in.Currency
	settings.Language = in.Language
	settings.DateFormat = in.DateFormat
	settings.DecimalPlaces = *in.DecimalPlaces
	settings.ExtraParams = in.ExtraParams
	settings.UpdatedAt = now
	if err := uc.repo.Update(settings); err != nil {
		return nil, err
	}
	return settingsToResponse(settings), nil
}

func settingsToResponse(s *entity.Settings) *dto.SettingsResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingsResponse{
		ID:            s.ID,
		Currency:      s.Currency,
		Language:      s.Language,
		DateFormat:    s.DateFormat,
		DecimalPlaces: s.DecimalPlaces,
		ExtraParams:   s.ExtraParams,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
