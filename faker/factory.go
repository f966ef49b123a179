package faker

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"modelkit/internal/naming"
	"modelkit/internal/validator"
	"modelkit/pkg/apperrors"
)

// Factory создает экземпляры модели T, наполненные случайными данными.
// Каждый вызов Fake производит свежий экземпляр, независимый от предыдущих.
type Factory[T any] struct {
	db       *gorm.DB
	fake     *gofakeit.Faker
	fields   map[string]FieldSpec
	pool     int
	persist  bool
	validate *validator.Validator
}

// pendingSync - отложенный вызов синхронизации m2m-ассоциации.
// Выполняется после сохранения экземпляра, в порядке обнаружения атрибутов.
type pendingSync struct {
	association string
	model       any
	ids         []string
}

// NewFactory создает фабрику для модели T. Если *T реализует Fakable,
// декларированные атрибуты модели становятся стартовой конфигурацией.
func NewFactory[T any](db *gorm.DB) *Factory[T] {
	f := &Factory[T]{
		db:     db,
		fake:   gofakeit.New(0),
		fields: map[string]FieldSpec{},
		pool:   5,
	}

	var zero T
	if fk, ok := any(&zero).(Fakable); ok {
		for name, spec := range fk.FakableFields() {
			f.fields[name] = spec
		}
	}
	return f
}

// Seed фиксирует seed генератора случайных данных (для воспроизводимости).
func (f *Factory[T]) Seed(seed int64) *Factory[T] {
	f.fake = gofakeit.New(seed)
	return f
}

// WithField переопределяет спецификацию одного атрибута.
func (f *Factory[T]) WithField(name string, spec FieldSpec) *Factory[T] {
	f.fields[name] = spec
	return f
}

// WithoutField убирает атрибут из генерации.
func (f *Factory[T]) WithoutField(name string) *Factory[T] {
	delete(f.fields, name)
	return f
}

// Persist включает или выключает сохранение сгенерированных экземпляров.
func (f *Factory[T]) Persist(persist bool) *Factory[T] {
	f.persist = persist
	return f
}

// WithValidation включает проверку validate-тегов модели перед сохранением.
func (f *Factory[T]) WithValidation() *Factory[T] {
	f.validate = validator.New()
	return f
}

// SetPool устанавливает размер пула: случайное число в [min, max].
// Если max не передан, верхняя граница - min+5. Так считали всегда,
// существующие фикстуры зависят от этой арифметики.
func (f *Factory[T]) SetPool(min int, max ...int) *Factory[T] {
	bound := min + 5
	if len(max) > 0 {
		bound = max[0]
	}
	f.pool = f.fake.Number(min, bound)
	return f
}

// SetPoolFromModel устанавливает пул как количество строк другой модели,
// умноженное на power (по умолчанию 2).
func (f *Factory[T]) SetPoolFromModel(model any, power int) (*Factory[T], error) {
	if power <= 0 {
		power = 2
	}
	var count int64
	if err := f.db.Model(model).Count(&count).Error; err != nil {
		return f, apperrors.DatabaseError(err)
	}
	f.pool = int(count) * power
	return f, nil
}

// Pool возвращает текущий размер пула.
func (f *Factory[T]) Pool() int {
	return f.pool
}

// Fake генерирует один экземпляр: разрешает все атрибуты, наполняет свежий
// экземпляр, сохраняет его (если включено) и выполняет отложенные
// синхронизации m2m-связей. Сохранение и синхронизации не обернуты в одну
// транзакцию, частичный сбой оставляет частичное состояние.
func (f *Factory[T]) Fake(ctx context.Context) (*T, error) {
	attrs := map[string]any{}
	var syncs []pendingSync

	inst := new(T)

	names := make([]string, 0, len(f.fields))
	for name := range f.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch spec := f.fields[name].(type) {
		case Value:
			attrs[name] = spec.V

		case Call:
			attrs[name] = spec.Fn(f.fake)

		case BelongsTo:
			id, err := f.RandomID(ctx, spec.Model, spec.Exclude...)
			if err != nil {
				return nil, err
			}
			attrs[name] = id

		case Polymorphic:
			entityType, id, err := f.RandomPolymorphic(ctx, spec.Candidates)
			if err != nil {
				return nil, err
			}
			attrs[name+"_type"] = entityType
			attrs[name+"_id"] = id

		case ManyToMany:
			min, max := spec.Min, spec.Max
			if min == 0 {
				min = 5
			}
			if max == 0 {
				max = min + 5
			}
			ids, err := f.RandomIDs(ctx, spec.Model, min, max)
			if err != nil {
				return nil, err
			}
			association := spec.Association
			if association == "" {
				association = naming.SnakeToCamel(name)
			}
			if f.hasAssociation(inst, association) {
				// Откладываем до сохранения экземпляра
				syncs = append(syncs, pendingSync{association: association, model: spec.Model, ids: ids})
			} else {
				attrs[name] = ids
			}

		default:
			return nil, apperrors.New(apperrors.CodeInvalidOperation, "faker",
				fmt.Sprintf("unsupported field spec for attribute %q", name))
		}
	}

	if err := applyAttributes(inst, attrs); err != nil {
		return nil, err
	}

	if f.validate != nil {
		if err := f.validate.ValidateStruct(inst); err != nil {
			return nil, err
		}
	}

	if f.persist {
		// Select("*") пишет все колонки явно: иначе gorm опускает
		// нулевые поля с тегом default, и дефолт базы перебивает
		// сгенерированное значение (false превращается в true)
		if err := f.db.WithContext(ctx).Select("*").Create(inst).Error; err != nil {
			return nil, apperrors.DatabaseError(err)
		}
	}

	for _, s := range syncs {
		if err := f.syncAssociation(ctx, inst, s); err != nil {
			return nil, err
		}
	}

	return inst, nil
}

// FakeMultiple генерирует серию экземпляров. Если переданы границы,
// сначала переустанавливает пул. Цикл включает границу пула, то есть
// производится pool+1 экземпляров - существующие фикстуры рассчитаны
// именно на это количество.
func (f *Factory[T]) FakeMultiple(ctx context.Context, bounds ...int) ([]*T, error) {
	if len(bounds) > 0 {
		f.SetPool(bounds[0], bounds[1:]...)
	}

	out := make([]*T, 0, f.pool+1)
	for i := 0; i <= f.pool; i++ {
		inst, err := f.Fake(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// hasAssociation проверяет, есть ли у модели gorm-ассоциация с таким именем.
func (f *Factory[T]) hasAssociation(inst *T, name string) bool {
	stmt := &gorm.Statement{DB: f.db}
	if err := stmt.Parse(inst); err != nil {
		return false
	}
	_, ok := stmt.Schema.Relationships.Relations[name]
	return ok
}

// syncAssociation заменяет содержимое ассоциации на строки с выбранными id.
func (f *Factory[T]) syncAssociation(ctx context.Context, inst *T, s pendingSync) error {
	modelType := reflect.TypeOf(s.model)
	for modelType.Kind() == reflect.Pointer {
		modelType = modelType.Elem()
	}

	related := reflect.New(reflect.SliceOf(modelType))
	if err := f.db.WithContext(ctx).Where("id IN ?", s.ids).Find(related.Interface()).Error; err != nil {
		return apperrors.DatabaseError(err)
	}

	err := f.db.WithContext(ctx).Model(inst).Association(s.association).Replace(related.Elem().Interface())
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "faker",
			fmt.Sprintf("failed to sync association %q", s.association))
	}
	return nil
}

// applyAttributes наполняет структуру значениями по snake_case именам
// атрибутов. Атрибут без соответствующего поля - ошибка конфигурации.
func applyAttributes(inst any, attrs map[string]any) error {
	v := reflect.ValueOf(inst).Elem()

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !setAttribute(v, name, attrs[name]) {
			return apperrors.New(apperrors.CodeUnknownAttribute, "faker",
				fmt.Sprintf("attribute %q does not match any field of %s", name, v.Type().Name()))
		}
	}
	return nil
}

// setAttribute находит поле по snake_case имени (включая встроенные
// структуры) и записывает значение с приведением типа.
func setAttribute(v reflect.Value, attr string, val any) bool {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && v.Field(i).Kind() == reflect.Struct {
			if setAttribute(v.Field(i), attr, val) {
				return true
			}
			continue
		}
		if !strings.EqualFold(naming.CamelToSnake(field.Name), attr) {
			continue
		}

		fv := v.Field(i)
		if !fv.CanSet() {
			return false
		}
		rv := reflect.ValueOf(val)
		switch {
		case rv.Type().AssignableTo(fv.Type()):
			fv.Set(rv)
		case rv.Type().ConvertibleTo(fv.Type()):
			fv.Set(rv.Convert(fv.Type()))
		default:
			return false
		}
		return true
	}
	return false
}
