package presenter

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RouteResolver отвечает на вопрос "есть ли такой именованный маршрут"
// и строит для него URL. Передается в Presenter явно, никаких глобальных
// реестров.
type RouteResolver interface {
	Has(name string) bool
	URL(name string, id string) string
}

// GinResolver сопоставляет точечные имена маршрутов
// ("admin.profiles.edit") с таблицей маршрутов gin-движка:
// "admin.profiles.edit" ↔ GET /admin/profiles/:id/edit.
type GinResolver struct {
	engine *gin.Engine
}

func NewGinResolver(engine *gin.Engine) *GinResolver {
	return &GinResolver{engine: engine}
}

// pathFor переводит имя маршрута в шаблон пути gin.
// Имя из трех сегментов: префикс, таблица, экшен.
func (r *GinResolver) pathFor(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) != 3 {
		return ""
	}
	return "/" + parts[0] + "/" + parts[1] + "/:id/" + parts[2]
}

func (r *GinResolver) Has(name string) bool {
	path := r.pathFor(name)
	if path == "" || r.engine == nil {
		return false
	}
	for _, route := range r.engine.Routes() {
		if route.Method == http.MethodGet && route.Path == path {
			return true
		}
	}
	return false
}

func (r *GinResolver) URL(name string, id string) string {
	path := r.pathFor(name)
	if path == "" {
		return ""
	}
	return strings.Replace(path, ":id", id, 1)
}
