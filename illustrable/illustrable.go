// Package illustrable дает любой модели полиморфные связи с загрузками
// (файлами и изображениями) и хелперы для миниатюр. Владелец передается
// явно через интерфейс Owner, тип загрузки не выводится из имен пакетов.
package illustrable

import (
	"errors"
	"fmt"
	"html/template"

	"gorm.io/gorm"

	"modelkit/internal/models"
)

// Owner - запись, которая может владеть загрузками.
type Owner interface {
	EntityType() string
	PrimaryKey() string
}

// Ширина миниатюры в пикселях по имени размера.
var thumbnailSizes = map[string]int{
	"small":  64,
	"medium": 160,
	"large":  320,
}

const defaultSize = "medium"

// ownedQuery строит базовый запрос загрузок владельца,
// отсортированный по имени файла по возрастанию.
func ownedQuery(db *gorm.DB, o Owner) *gorm.DB {
	return db.Model(&models.Upload{}).
		Where("entity_type = ? AND entity_id = ?", o.EntityType(), o.PrimaryKey()).
		Order("file_name ASC")
}

// Images возвращает все загрузки-изображения владельца.
func Images(db *gorm.DB, o Owner) ([]models.Upload, error) {
	var uploads []models.Upload
	err := ownedQuery(db, o).Where("file_type = ?", models.FileTypeImage).Find(&uploads).Error
	return uploads, err
}

// Files возвращает все загрузки владельца независимо от типа.
func Files(db *gorm.DB, o Owner) ([]models.Upload, error) {
	var uploads []models.Upload
	err := ownedQuery(db, o).Find(&uploads).Error
	return uploads, err
}

// File возвращает первую по имени файла загрузку владельца,
// либо nil, когда загрузок нет.
func File(db *gorm.DB, o Owner) (*models.Upload, error) {
	var upload models.Upload
	err := ownedQuery(db, o).First(&upload).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// Thumb возвращает первое изображение владельца, либо nil.
func Thumb(db *gorm.DB, o Owner) (*models.Upload, error) {
	var upload models.Upload
	err := ownedQuery(db, o).Where("file_type = ?", models.FileTypeImage).First(&upload).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// ParentableThumb возвращает собственную миниатюру владельца, а при ее
// отсутствии - миниатюру родителя. Ровно один уровень отката, без рекурсии.
func ParentableThumb(db *gorm.DB, o Owner, parent Owner) (*models.Upload, error) {
	thumb, err := Thumb(db, o)
	if err != nil {
		return nil, err
	}
	if thumb != nil {
		return thumb, nil
	}
	if parent == nil {
		return nil, nil
	}
	return Thumb(db, parent)
}

// Thumbnail рендерит img-тег миниатюры владельца. Когда изображений нет,
// подставляется заглушка, выбираемая по типу записи.
func Thumbnail(db *gorm.DB, o Owner, size string) (template.HTML, error) {
	width, ok := thumbnailSizes[size]
	if !ok {
		width = thumbnailSizes[defaultSize]
	}

	thumb, err := Thumb(db, o)
	if err != nil {
		return "", err
	}

	if thumb == nil {
		return template.HTML(fmt.Sprintf(
			`<img src="/images/placeholders/%s.png" width="%d" alt="%s">`,
			template.HTMLEscapeString(o.EntityType()), width, template.HTMLEscapeString(o.EntityType()),
		)), nil
	}

	return template.HTML(fmt.Sprintf(
		`<img src="%s" width="%d" alt="%s">`,
		template.HTMLEscapeString(thumb.Path), width, template.HTMLEscapeString(thumb.FileName),
	)), nil
}
