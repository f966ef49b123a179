package models

type Agency struct {
	BaseModel
	Name    string `gorm:"not null" json:"name" validate:"required"`
	Website string `json:"website"`
	Email   string `json:"email" validate:"omitempty,email"`
	City    string `json:"city"`

	// Relations
	Profiles []Profile `gorm:"foreignKey:AgencyID" json:"profiles,omitempty"`
}

// EntityType возвращает полиморфный тип записи для загрузок
func (a *Agency) EntityType() string {
	return "agency"
}

// DisplayName возвращает отображаемое имя для presenter
func (a *Agency) DisplayName() string {
	return a.Name
}
