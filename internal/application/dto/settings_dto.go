package dto

import (
	"encoding/json"
	"time"
)

// UpdateSettingsRequest actualización de la configuración global.
type UpdateSettingsRequest struct {
	Currency      string          `json:"currency"`
	Language      string          `json:"language"`
	DateFormat    string          `json:"date_format"`
	DecimalPlaces *int            `json:"decimal_places"`
	ExtraParams   json.RawMessage `json:"extra_params"`
}

// SettingsResponse representación HTTP de la configuración.
type SettingsResponse struct {
	ID            string          `json:"id"`
	Currency      string          `json:"currency"`
	Language      string          `json:"language"`
	DateFormat    string          `json:"date_format"`
	DecimalPlaces int             `json:"decimal_places"`
	ExtraParams   json.RawMessage `json:"extra_params,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
