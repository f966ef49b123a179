// Package presenter форматирует атрибуты моделей в готовые для вьюх строки:
// булевы метки, гендер, ссылки на сайт и почту, ссылки на админские экшены.
package presenter

import (
	"fmt"
	"html/template"
	"reflect"

	"gorm.io/gorm"

	"modelkit/internal/naming"
)

// Entity - запись, которую можно отрендерить ссылкой или текстом.
type Entity interface {
	PrimaryKey() string
	DisplayName() string
}

// Presenter не владеет записью и не мутирует ее; только читает атрибуты.
// Реестр маршрутов передается явно при конструировании.
type Presenter struct {
	db     *gorm.DB
	routes RouteResolver
}

func New(db *gorm.DB, routes RouteResolver) *Presenter {
	return &Presenter{db: db, routes: routes}
}

// Boolean форматирует булево значение меткой Yes/No.
func Boolean(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Gender форматирует числовой код гендера: 0 - "Male", все остальное -
// "Female". Код 0 исторически означает мужской, менять нельзя.
func Gender(code int) string {
	if code == 0 {
		return "Male"
	}
	return "Female"
}

// Website форматирует адрес сайта кликабельной ссылкой.
// Пустой адрес дает пустую строку.
func Website(url string) template.HTML {
	if url == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(url)
	return template.HTML(fmt.Sprintf(`<a href="%s">%s</a>`, escaped, escaped))
}

// Email форматирует адрес почты mailto-ссылкой.
func Email(addr string) template.HTML {
	if addr == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(addr)
	return template.HTML(fmt.Sprintf(`<a href="mailto:%s">%s</a>`, escaped, escaped))
}

// Services возвращает глубокую копию карты сервисов, где каждый булев
// лист заменен меткой Yes/No. Исходная карта не изменяется.
func Services(services map[string]map[string]bool) map[string]map[string]string {
	out := make(map[string]map[string]string, len(services))
	for service, settings := range services {
		formatted := make(map[string]string, len(settings))
		for setting, enabled := range settings {
			formatted[setting] = Boolean(enabled)
		}
		out[service] = formatted
	}
	return out
}

// Model рендерит запись: имя записи (или "{table} {id}", когда имя пустое),
// обернутое ссылкой на админский edit-маршрут, если тот зарегистрирован и
// запись имеет id. Nil-запись дает пустую строку.
func (p *Presenter) Model(e Entity) template.HTML {
	if isNil(e) {
		return ""
	}

	table := naming.TableName(e)
	label := e.DisplayName()
	if label == "" {
		label = fmt.Sprintf("%s %s", table, e.PrimaryKey())
	}
	escaped := template.HTMLEscapeString(label)

	route := fmt.Sprintf("admin.%s.edit", table)
	if e.PrimaryKey() == "" || p.routes == nil || !p.routes.Has(route) {
		return template.HTML(escaped)
	}

	url := p.routes.URL(route, e.PrimaryKey())
	return template.HTML(fmt.Sprintf(`<a href="%s">%s</a>`, template.HTMLEscapeString(url), escaped))
}

// CollectionCount считает именованную gorm-ассоциацию записи и, если
// зарегистрирован соответствующий админский экшен, оборачивает число
// ссылкой на него.
func (p *Presenter) CollectionCount(e Entity, relation string) (template.HTML, error) {
	assoc := p.db.Model(e).Association(relation)
	if assoc.Error != nil {
		return "", assoc.Error
	}
	count := assoc.Count()

	label := fmt.Sprintf("%d", count)

	route := fmt.Sprintf("admin.%s.%s", naming.TableName(e), naming.CamelToSnake(relation))
	if p.routes == nil || !p.routes.Has(route) {
		return template.HTML(label), nil
	}

	url := p.routes.URL(route, e.PrimaryKey())
	return template.HTML(fmt.Sprintf(`<a href="%s">%s</a>`, template.HTMLEscapeString(url), label)), nil
}

// isNil ловит и нетипизированный nil, и типизированный nil-указатель
// в интерфейсе.
func isNil(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
