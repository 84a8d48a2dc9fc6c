package entity

import (
	"encoding/json"
	"time"
)

// Settings agrupa la configuración global del sistema. Existe una sola fila;
// la primera lectura la crea con valores por defecto.
type Settings struct {
	ID            string
	Currency      string
	Language      string
	DateFormat    string
	DecimalPlaces int
	ExtraParams   json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
