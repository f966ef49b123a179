package presenter_test

import (
	"html/template"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelkit/internal/models"
	"modelkit/internal/testdb"
	"modelkit/presenter"
)

func TestBoolean(t *testing.T) {
	assert.Equal(t, "Yes", presenter.Boolean(true))
	assert.Equal(t, "No", presenter.Boolean(false))
}

func TestGender(t *testing.T) {
	// Код 0 - мужской, любой другой - женский
	assert.Equal(t, "Male", presenter.Gender(0))
	assert.Equal(t, "Female", presenter.Gender(1))
	assert.Equal(t, "Female", presenter.Gender(42))
	assert.Equal(t, "Female", presenter.Gender(-1))
}

func TestWebsiteAndEmail(t *testing.T) {
	assert.Equal(t,
		template.HTML(`<a href="https://example.com">https://example.com</a>`),
		presenter.Website("https://example.com"))
	assert.Equal(t, template.HTML(""), presenter.Website(""))

	assert.Equal(t,
		template.HTML(`<a href="mailto:a@b.kz">a@b.kz</a>`),
		presenter.Email("a@b.kz"))
	assert.Equal(t, template.HTML(""), presenter.Email(""))
}

func TestServices(t *testing.T) {
	src := map[string]map[string]bool{
		"mail": {"enabled": true, "verified": false},
	}

	out := presenter.Services(src)

	assert.Equal(t, map[string]map[string]string{
		"mail": {"enabled": "Yes", "verified": "No"},
	}, out)

	// Исходная карта не изменяется
	assert.True(t, src["mail"]["enabled"])
}

func TestModel(t *testing.T) {
	db := testdb.New(t)
	engine := adminEngine()
	p := presenter.New(db, presenter.NewGinResolver(engine))

	t.Run("nil record renders empty", func(t *testing.T) {
		assert.Equal(t, template.HTML(""), p.Model(nil))

		var profile *models.Profile
		assert.Equal(t, template.HTML(""), p.Model(profile))
	})

	t.Run("name fallback without matching route", func(t *testing.T) {
		// Теги не имеют админского edit-маршрута в тестовом движке
		tag := &models.Tag{}
		tag.ID = "7"

		assert.Equal(t, template.HTML("tags 7"), p.Model(tag))
	})

	t.Run("plain text without id", func(t *testing.T) {
		profile := &models.Profile{Name: "Aizere"}

		assert.Equal(t, template.HTML("Aizere"), p.Model(profile))
	})

	t.Run("link when admin edit route exists", func(t *testing.T) {
		profile := &models.Profile{Name: "Aizere"}
		profile.ID = "42"

		assert.Equal(t,
			template.HTML(`<a href="/admin/profiles/42/edit">Aizere</a>`),
			p.Model(profile))
	})
}

func TestCollectionCount(t *testing.T) {
	db := testdb.New(t)
	engine := adminEngine()

	agency := testdb.CreateAgency(t, db, "Aura Models")
	profile := testdb.CreateProfile(t, db, "Dana", agency.ID)

	first := testdb.CreateTag(t, db, "fashion")
	second := testdb.CreateTag(t, db, "editorial")
	require.NoError(t, db.Model(profile).Association("Tags").Append(first, second))

	t.Run("plain count without route", func(t *testing.T) {
		p := presenter.New(db, presenter.NewGinResolver(gin.New()))

		out, err := p.CollectionCount(profile, "Tags")
		require.NoError(t, err)
		assert.Equal(t, template.HTML("2"), out)
	})

	t.Run("linked count with route", func(t *testing.T) {
		p := presenter.New(db, presenter.NewGinResolver(engine))

		out, err := p.CollectionCount(profile, "Tags")
		require.NoError(t, err)
		assert.Equal(t,
			template.HTML(`<a href="/admin/profiles/`+profile.ID+`/tags">2</a>`),
			out)
	})

	t.Run("unknown relation surfaces error", func(t *testing.T) {
		p := presenter.New(db, presenter.NewGinResolver(engine))

		_, err := p.CollectionCount(profile, "Bogus")
		assert.Error(t, err)
	})
}

// adminEngine регистрирует тестовые админские маршруты
func adminEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	noop := func(c *gin.Context) {}
	engine.GET("/admin/profiles/:id/edit", noop)
	engine.GET("/admin/profiles/:id/tags", noop)
	engine.GET("/admin/agencies/:id/edit", noop)
	return engine
}
