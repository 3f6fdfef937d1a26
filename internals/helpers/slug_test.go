package helper

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSlugTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE channels (
		channel_slug TEXT NOT NULL,
		channel_deleted_at DATETIME
	)`).Error)
	return db
}

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Matematika Kelas 7":   "matematika-kelas-7",
		"  Fisika   Dasar!!  ": "fisika-dasar",
		"IPA (Semester 2)":     "ipa-semester-2",
		"---":                  "",
	}
	for input, want := range cases {
		assert.Equal(t, want, GenerateSlug(input), "input: %q", input)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	db := newSlugTestDB(t)

	slug, err := EnsureUniqueSlug(db, "matematika", "channels", "channel_slug", "channel_deleted_at")
	require.NoError(t, err)
	assert.Equal(t, "matematika", slug)

	require.NoError(t, db.Exec(`INSERT INTO channels (channel_slug) VALUES ('matematika')`).Error)

	slug, err = EnsureUniqueSlug(db, "matematika", "channels", "channel_slug", "channel_deleted_at")
	require.NoError(t, err)
	assert.Equal(t, "matematika-2", slug)

	require.NoError(t, db.Exec(`INSERT INTO channels (channel_slug) VALUES ('matematika-2')`).Error)

	slug, err = EnsureUniqueSlug(db, "matematika", "channels", "channel_slug", "channel_deleted_at")
	require.NoError(t, err)
	assert.Equal(t, "matematika-3", slug)
}

func TestEnsureUniqueSlugExceptSkipsOwnRow(t *testing.T) {
	db := newSlugTestDB(t)
	require.NoError(t, db.Exec(`ALTER TABLE channels ADD COLUMN channel_id TEXT`).Error)

	require.NoError(t, db.Exec(
		`INSERT INTO channels (channel_id, channel_slug) VALUES ('ch-1', 'biologi')`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO channels (channel_id, channel_slug) VALUES ('ch-2', 'biologi-2')`).Error)

	// Baris sendiri tidak bentrok: slug tetap biologi, bukan biologi-3
	slug, err := EnsureUniqueSlugExcept(db, "biologi",
		"channels", "channel_slug", "channel_deleted_at", "channel_id", "ch-1")
	require.NoError(t, err)
	assert.Equal(t, "biologi", slug)

	// Baris lain tetap dihitung: biologi milik ch-1, lanjut ke biologi-2
	// yang kebetulan milik ch-2 sendiri
	slug, err = EnsureUniqueSlugExcept(db, "biologi",
		"channels", "channel_slug", "channel_deleted_at", "channel_id", "ch-2")
	require.NoError(t, err)
	assert.Equal(t, "biologi-2", slug)
}

func TestEnsureUniqueSlugIgnoresSoftDeleted(t *testing.T) {
	db := newSlugTestDB(t)

	require.NoError(t, db.Exec(
		`INSERT INTO channels (channel_slug, channel_deleted_at) VALUES ('fisika', CURRENT_TIMESTAMP)`).Error)

	slug, err := EnsureUniqueSlug(db, "fisika", "channels", "channel_slug", "channel_deleted_at")
	require.NoError(t, err)
	assert.Equal(t, "fisika", slug)
}

func TestGenerateAccessCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateAccessCode()
		require.NoError(t, err)
		assert.Len(t, code, AccessCodeLength)
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
		seen[code] = true
	}
	// 50 kode acak hampir pasti unik semua
	assert.Greater(t, len(seen), 45)
}
