package testdb

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"modelkit/internal/database"
	"modelkit/internal/models"
)

// New открывает in-memory SQLite базу для одного теста и прогоняет
// миграции. База живет до конца теста.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую базу: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Не удалось прогнать миграции: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// CreateAgency создает агентство с заданным именем
func CreateAgency(t *testing.T, db *gorm.DB, name string) *models.Agency {
	t.Helper()

	agency := &models.Agency{Name: name, City: "Almaty"}
	if err := db.Create(agency).Error; err != nil {
		t.Fatalf("Не удалось создать агентство %s: %v", name, err)
	}
	return agency
}

// CreateProfile создает профиль, привязанный к агентству
func CreateProfile(t *testing.T, db *gorm.DB, name string, agencyID string) *models.Profile {
	t.Helper()

	profile := &models.Profile{Name: name, AgencyID: agencyID, Public: true}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Не удалось создать профиль %s: %v", name, err)
	}
	return profile
}

// CreateTag создает тег
func CreateTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()

	tag := &models.Tag{Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("Не удалось создать тег %s: %v", name, err)
	}
	return tag
}

// CreateUpload привязывает загрузку к владельцу
func CreateUpload(t *testing.T, db *gorm.DB, entityType, entityID, fileName, fileType string) *models.Upload {
	t.Helper()

	upload := &models.Upload{
		EntityType: entityType,
		EntityID:   entityID,
		FileName:   fileName,
		Path:       "/uploads/" + fileName,
		FileType:   fileType,
		MimeType:   "image/jpeg",
		Size:       2048,
	}
	if err := db.Create(upload).Error; err != nil {
		t.Fatalf("Не удалось создать загрузку %s: %v", fileName, err)
	}
	return upload
}
