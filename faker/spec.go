// Package faker генерирует наполненные случайными данными экземпляры
// gorm-моделей для сидинга и тестов. Модель декларирует свои fakable-атрибуты
// через интерфейс Fakable; каждому атрибуту соответствует один из закрытого
// набора вариантов FieldSpec.
package faker

import "github.com/brianvoe/gofakeit/v6"

// FieldSpec описывает, как сгенерировать значение одного атрибута.
// Закрытый набор вариантов: Value, Call, BelongsTo, Polymorphic, ManyToMany.
type FieldSpec interface {
	fieldSpec()
}

// Value - фиксированное значение, записывается как есть.
type Value struct {
	V any
}

// Call - вызов генератора из библиотеки фейковых данных.
type Call struct {
	Fn func(f *gofakeit.Faker) any
}

// BelongsTo - внешний ключ: случайный id существующей строки модели Model.
// Exclude позволяет исключить конкретные id из выборки.
type BelongsTo struct {
	Model   any
	Exclude []string
}

// Polymorphic - полиморфная связь: случайный тип из Candidates, затем
// случайный id строки этого типа. Атрибут "x" разворачивается в два
// атрибута: "x_type" и "x_id".
type Polymorphic struct {
	Candidates []any
}

// ManyToMany - связь многие-ко-многим: случайный набор id модели Model,
// который после сохранения экземпляра синхронизируется с gorm-ассоциацией.
// Association - имя ассоциации; пустое значение выводится из имени атрибута
// ("tags" → "Tags"). Нулевые Min/Max означают 5 и Min+5 соответственно.
type ManyToMany struct {
	Model       any
	Association string
	Min         int
	Max         int
}

func (Value) fieldSpec()       {}
func (Call) fieldSpec()        {}
func (BelongsTo) fieldSpec()   {}
func (Polymorphic) fieldSpec() {}
func (ManyToMany) fieldSpec()  {}

// Fakable реализуется моделью, которая декларирует свои fakable-атрибуты.
// Ключи карты - имена атрибутов в snake_case, как имена колонок.
type Fakable interface {
	FakableFields() map[string]FieldSpec
}
