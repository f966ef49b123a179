package models

type Tag struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name" validate:"required"`

	// Relations
	Profiles []Profile `gorm:"many2many:profile_tags" json:"profiles,omitempty"`
}

// DisplayName возвращает отображаемое имя для presenter
func (t *Tag) DisplayName() string {
	return t.Name
}
