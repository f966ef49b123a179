package presenter_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"modelkit/presenter"
)

func TestGinResolver(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/admin/profiles/:id/edit", func(c *gin.Context) {})
	engine.POST("/admin/profiles/:id/delete", func(c *gin.Context) {})

	r := presenter.NewGinResolver(engine)

	t.Run("has registered GET routes only", func(t *testing.T) {
		assert.True(t, r.Has("admin.profiles.edit"))
		assert.False(t, r.Has("admin.profiles.delete"), "только GET-маршруты считаются экшенами")
		assert.False(t, r.Has("admin.agencies.edit"))
		assert.False(t, r.Has("malformed"))
	})

	t.Run("builds url with id substituted", func(t *testing.T) {
		assert.Equal(t, "/admin/profiles/42/edit", r.URL("admin.profiles.edit", "42"))
		assert.Equal(t, "", r.URL("malformed", "42"))
	})
}
