package models

import (
	"encoding/json"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/datatypes"

	"modelkit/faker"
)

// Декларации fakable-атрибутов для сидинга и тестов.
// Ключи - snake_case имена колонок; значения - варианты faker.FieldSpec.

// Фиксированный bcrypt-хеш пароля "password123": хешировать на каждую
// запись слишком дорого для сидинга.
const seedPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (u *User) FakableFields() map[string]faker.FieldSpec {
	return map[string]faker.FieldSpec{
		"email":         faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Email() }},
		"password_hash": faker.Value{V: seedPasswordHash},
		"role":          faker.Call{Fn: func(f *gofakeit.Faker) any { return f.RandomString([]string{"member", "agent", "admin"}) }},
	}
}

func (a *Agency) FakableFields() map[string]faker.FieldSpec {
	return map[string]faker.FieldSpec{
		"name":    faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Company() }},
		"website": faker.Call{Fn: func(f *gofakeit.Faker) any { return f.URL() }},
		"email":   faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Email() }},
		"city":    faker.Call{Fn: func(f *gofakeit.Faker) any { return f.City() }},
	}
}

func (p *Profile) FakableFields() map[string]faker.FieldSpec {
	return map[string]faker.FieldSpec{
		"name":      faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Name() }},
		"website":   faker.Call{Fn: func(f *gofakeit.Faker) any { return f.URL() }},
		"email":     faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Email() }},
		"gender":    faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Number(GenderMale, GenderFemale) }},
		"private":   faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Bool() }},
		"featured":  faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Bool() }},
		"public":    faker.Call{Fn: func(f *gofakeit.Faker) any { return f.Bool() }},
		"city":      faker.Call{Fn: func(f *gofakeit.Faker) any { return f.City() }},
		"services":  faker.Call{Fn: fakeServices},
		"agency_id": faker.BelongsTo{Model: &Agency{}},
		"tags":      faker.ManyToMany{Model: &Tag{}, Min: 1, Max: 4},
	}
}

func (t *Tag) FakableFields() map[string]faker.FieldSpec {
	return map[string]faker.FieldSpec{
		// Суффикс из цифр, чтобы не упираться в уникальный индекс по имени
		"name": faker.Call{Fn: func(f *gofakeit.Faker) any { return fmt.Sprintf("%s-%s", f.BuzzWord(), f.DigitN(4)) }},
	}
}

func (u *Upload) FakableFields() map[string]faker.FieldSpec {
	return map[string]faker.FieldSpec{
		"entity":    faker.Polymorphic{Candidates: []any{&Agency{}, &Profile{}}},
		"file_name": faker.Call{Fn: func(f *gofakeit.Faker) any { return fmt.Sprintf("%s.jpg", f.Word()) }},
		"path":      faker.Call{Fn: func(f *gofakeit.Faker) any { return fmt.Sprintf("/uploads/%s.jpg", f.UUID()) }},
		"mime_type": faker.Value{V: "image/jpeg"},
		"file_type": faker.Call{Fn: func(f *gofakeit.Faker) any { return f.RandomString([]string{FileTypeImage, FileTypeDocument}) }},
		"size":      faker.Call{Fn: func(f *gofakeit.Faker) any { return int64(f.Number(1024, 5*1024*1024)) }},
	}
}

// fakeServices генерирует карту сервисов с булевыми настройками.
func fakeServices(f *gofakeit.Faker) any {
	services := map[string]map[string]bool{
		"mail": {
			"enabled":  f.Bool(),
			"verified": f.Bool(),
		},
		"booking": {
			"enabled": f.Bool(),
			"instant": f.Bool(),
		},
	}
	data, _ := json.Marshal(services)
	return datatypes.JSON(data)
}
