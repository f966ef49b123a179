package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Gender хранится числовым кодом; 0 - мужской, все остальное - женский.
// Так исторически закодированы существующие данные, менять нельзя.
const (
	GenderMale   = 0
	GenderFemale = 1
)

type Profile struct {
	BaseModel
	Name     string `gorm:"not null" json:"name" validate:"required"`
	Website  string `json:"website"`
	Email    string `json:"email"`
	Gender   int    `gorm:"default:0" json:"gender"`
	Private  bool   `gorm:"default:false" json:"private"`
	Featured bool   `gorm:"default:false" json:"featured"`
	Public   bool   `gorm:"default:true" json:"public"`
	City     string `json:"city"`

	// {"mail": {"enabled": true, "verified": false}, ...}
	Services datatypes.JSON `gorm:"type:jsonb" json:"services"`

	AgencyID string `gorm:"type:uuid;index" json:"agency_id"`

	// Relations
	Agency *Agency `gorm:"foreignKey:AgencyID" json:"agency,omitempty"`
	Tags   []Tag   `gorm:"many2many:profile_tags" json:"tags,omitempty"`
}

// EntityType возвращает полиморфный тип записи для загрузок
func (p *Profile) EntityType() string {
	return "profile"
}

// DisplayName возвращает отображаемое имя для presenter
func (p *Profile) DisplayName() string {
	return p.Name
}

// GetServices возвращает карту сервисов профиля
func (p *Profile) GetServices() map[string]map[string]bool {
	services := map[string]map[string]bool{}
	if len(p.Services) > 0 {
		_ = json.Unmarshal(p.Services, &services)
	}
	return services
}

// SetServices устанавливает карту сервисов профиля
func (p *Profile) SetServices(services map[string]map[string]bool) {
	data, _ := json.Marshal(services)
	p.Services = datatypes.JSON(data)
}
