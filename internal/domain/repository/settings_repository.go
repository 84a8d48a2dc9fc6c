package repository

import "github.com/jhoicas/gestion-erp/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para la configuración
// global (fila única). Get devuelve nil si todavía no existe.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Create(settings *entity.Settings) error
	Update(settings *entity.Settings) error
}
