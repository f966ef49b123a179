package illustrable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelkit/illustrable"
	"modelkit/internal/models"
	"modelkit/internal/testdb"
)

func TestImagesAndFiles(t *testing.T) {
	db := testdb.New(t)
	agency := testdb.CreateAgency(t, db, "Aura Models")
	profile := testdb.CreateProfile(t, db, "Dana", agency.ID)

	// Вперемешку: изображения и документ, имена не по порядку
	testdb.CreateUpload(t, db, "profile", profile.ID, "b.jpg", models.FileTypeImage)
	testdb.CreateUpload(t, db, "profile", profile.ID, "a.jpg", models.FileTypeImage)
	testdb.CreateUpload(t, db, "profile", profile.ID, "c.pdf", models.FileTypeDocument)
	// Чужая загрузка не должна попадать в выборку
	testdb.CreateUpload(t, db, "agency", agency.ID, "logo.jpg", models.FileTypeImage)

	t.Run("images are filtered and ordered by file name", func(t *testing.T) {
		images, err := illustrable.Images(db, profile)
		require.NoError(t, err)
		require.Len(t, images, 2)
		assert.Equal(t, "a.jpg", images[0].FileName)
		assert.Equal(t, "b.jpg", images[1].FileName)
	})

	t.Run("files include every file type", func(t *testing.T) {
		files, err := illustrable.Files(db, profile)
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("file returns the first upload by name", func(t *testing.T) {
		file, err := illustrable.File(db, profile)
		require.NoError(t, err)
		require.NotNil(t, file)
		assert.Equal(t, "a.jpg", file.FileName)
	})
}

func TestThumb(t *testing.T) {
	db := testdb.New(t)
	agency := testdb.CreateAgency(t, db, "Aura Models")
	profile := testdb.CreateProfile(t, db, "Dana", agency.ID)

	t.Run("nil when no images", func(t *testing.T) {
		thumb, err := illustrable.Thumb(db, profile)
		require.NoError(t, err)
		assert.Nil(t, thumb)
	})

	t.Run("first image wins", func(t *testing.T) {
		testdb.CreateUpload(t, db, "profile", profile.ID, "z.pdf", models.FileTypeDocument)
		testdb.CreateUpload(t, db, "profile", profile.ID, "portrait.jpg", models.FileTypeImage)

		thumb, err := illustrable.Thumb(db, profile)
		require.NoError(t, err)
		require.NotNil(t, thumb)
		assert.Equal(t, "portrait.jpg", thumb.FileName)
	})
}

func TestParentableThumb(t *testing.T) {
	db := testdb.New(t)
	agency := testdb.CreateAgency(t, db, "Aura Models")
	profile := testdb.CreateProfile(t, db, "Dana", agency.ID)

	testdb.CreateUpload(t, db, "agency", agency.ID, "logo.jpg", models.FileTypeImage)

	t.Run("falls back to parent thumb", func(t *testing.T) {
		thumb, err := illustrable.ParentableThumb(db, profile, agency)
		require.NoError(t, err)
		require.NotNil(t, thumb)
		assert.Equal(t, "logo.jpg", thumb.FileName)
	})

	t.Run("own thumb has priority", func(t *testing.T) {
		testdb.CreateUpload(t, db, "profile", profile.ID, "own.jpg", models.FileTypeImage)

		thumb, err := illustrable.ParentableThumb(db, profile, agency)
		require.NoError(t, err)
		require.NotNil(t, thumb)
		assert.Equal(t, "own.jpg", thumb.FileName)
	})

	t.Run("nil without parent and without own thumb", func(t *testing.T) {
		orphan := testdb.CreateProfile(t, db, "Orphan", agency.ID)

		thumb, err := illustrable.ParentableThumb(db, orphan, nil)
		require.NoError(t, err)
		assert.Nil(t, thumb)
	})
}

func TestThumbnail(t *testing.T) {
	db := testdb.New(t)
	agency := testdb.CreateAgency(t, db, "Aura Models")
	profile := testdb.CreateProfile(t, db, "Dana", agency.ID)

	t.Run("placeholder by entity type when no images", func(t *testing.T) {
		html, err := illustrable.Thumbnail(db, profile, "small")
		require.NoError(t, err)
		assert.Equal(t,
			`<img src="/images/placeholders/profile.png" width="64" alt="profile">`,
			string(html))
	})

	t.Run("renders the thumb with size width", func(t *testing.T) {
		testdb.CreateUpload(t, db, "profile", profile.ID, "portrait.jpg", models.FileTypeImage)

		html, err := illustrable.Thumbnail(db, profile, "large")
		require.NoError(t, err)
		assert.Equal(t,
			`<img src="/uploads/portrait.jpg" width="320" alt="portrait.jpg">`,
			string(html))
	})

	t.Run("unknown size falls back to medium", func(t *testing.T) {
		html, err := illustrable.Thumbnail(db, profile, "gigantic")
		require.NoError(t, err)
		assert.Contains(t, string(html), `width="160"`)
	})
}
