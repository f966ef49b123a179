package models

const (
	FileTypeImage    = "image"
	FileTypeVideo    = "video"
	FileTypeDocument = "document"
)

type Upload struct {
	BaseModel
	EntityType string `gorm:"index:idx_uploads_entity;not null" json:"entity_type"` // "profile", "agency", ...
	EntityID   string `gorm:"index:idx_uploads_entity;type:uuid;not null" json:"entity_id"`
	FileName   string `gorm:"size:255;not null" json:"file_name"`
	Path       string `gorm:"size:512" json:"path"` // "/uploads/profiles/abc.jpg"
	MimeType   string `gorm:"size:128" json:"mime_type"`
	FileType   string `gorm:"size:20;index" json:"file_type"` // "image", "video", "document"
	Size       int64  `json:"size"`
}

// IsImage сообщает, является ли загрузка изображением
func (u *Upload) IsImage() bool {
	return u.FileType == FileTypeImage
}
