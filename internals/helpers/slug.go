package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 120

var reDash = regexp.MustCompile(`-+`)

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - spasi & non-alnum jadi "-"
// - collapse multiple "-" -> satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	return reDash.ReplaceAllString(out, "-")
}

// EnsureUniqueSlug membuat slug unik (case-insensitive) pada tabel/kolom yang
// diberikan, hanya menghitung baris yang belum soft-delete. Jika bentrok, coba
// base-2, base-3, dst.
func EnsureUniqueSlug(db *gorm.DB, base, table, slugColumn, softDeleteColumn string) (string, error) {
	return EnsureUniqueSlugExcept(db, base, table, slugColumn, softDeleteColumn, "", nil)
}

// EnsureUniqueSlugExcept seperti EnsureUniqueSlug tapi mengabaikan satu baris
// (idColumn = excludeID). Dipakai saat update: slug milik baris sendiri tidak
// boleh dihitung bentrok, supaya edit judul yang menghasilkan slug sama tidak
// berubah jadi base-2.
func EnsureUniqueSlugExcept(db *gorm.DB, base, table, slugColumn, softDeleteColumn, idColumn string, excludeID any) (string, error) {
	if base == "" {
		return "", fmt.Errorf("slug kosong")
	}
	if len(base) > DefaultSlugMaxLen {
		base = strings.Trim(base[:DefaultSlugMaxLen], "-")
	}

	candidate := base
	for i := 2; i < 1000; i++ {
		taken, err := slugTaken(db, table, slugColumn, softDeleteColumn, candidate, idColumn, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("gagal menemukan slug unik untuk %q", base)
}

func slugTaken(db *gorm.DB, table, slugColumn, softDeleteColumn, candidate, idColumn string, excludeID any) (bool, error) {
	q := db.Table(table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", slugColumn), candidate)
	if softDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", softDeleteColumn))
	}
	if idColumn != "" && excludeID != nil {
		q = q.Where(fmt.Sprintf("%s <> ?", idColumn), excludeID)
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
