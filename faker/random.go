package faker

import (
	"context"
	"fmt"

	"modelkit/internal/naming"
	"modelkit/pkg/apperrors"
)

// entityTyper реализуется моделями, которые сами знают свой полиморфный тип.
type entityTyper interface {
	EntityType() string
}

// RandomID возвращает случайный id существующей строки модели.
// Пустая выборка - явная ошибка CodeNoCandidates, а не молчаливый nil.
func (f *Factory[T]) RandomID(ctx context.Context, model any, exclude ...string) (string, error) {
	q := f.db.WithContext(ctx).Model(model)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}

	var ids []string
	if err := q.Pluck("id", &ids).Error; err != nil {
		return "", apperrors.DatabaseError(err)
	}
	if len(ids) == 0 {
		return "", apperrors.New(apperrors.CodeNoCandidates, "faker",
			fmt.Sprintf("no candidate rows in %q", naming.TableName(model)))
	}

	return ids[f.fake.Number(0, len(ids)-1)], nil
}

// RandomPolymorphic выбирает случайный тип из кандидатов, затем случайный id
// строки этого типа. Возвращает пару (тип, id).
func (f *Factory[T]) RandomPolymorphic(ctx context.Context, candidates []any) (string, string, error) {
	if len(candidates) == 0 {
		return "", "", apperrors.New(apperrors.CodeNoCandidates, "faker", "no candidate types given")
	}

	model := candidates[f.fake.Number(0, len(candidates)-1)]

	entityType := naming.EntityType(model)
	if et, ok := model.(entityTyper); ok {
		entityType = et.EntityType()
	}

	id, err := f.RandomID(ctx, model)
	if err != nil {
		return "", "", err
	}
	return entityType, id, nil
}

// RandomIDs возвращает случайное количество (в [min, max]) случайных id
// модели. Повторы допустимы.
func (f *Factory[T]) RandomIDs(ctx context.Context, model any, min, max int) ([]string, error) {
	if max < min {
		max = min
	}
	n := f.fake.Number(min, max)

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := f.RandomID(ctx, model)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
