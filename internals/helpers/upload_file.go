package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"eduarchive_backend/internals/configs"
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// sanitizeFilename menghapus karakter selain huruf, angka, titik, dash, underscore
func sanitizeFilename(filename string) string {
	return reUnsafeFilename.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s-%s-%s", timestamp, uuidStr, sanitizeFilename(originalFilename))
}

// SavedFile hasil penyimpanan file ke disk lokal.
type SavedFile struct {
	RelativePath string // disimpan di DB, relative terhadap UPLOAD_DIR
	FileName     string // nama file asli (sudah disanitasi)
	Mime         string
	Size         int64
}

// SaveUploadedFile menyimpan multipart file ke UPLOAD_DIR/<folder>/ dengan nama unik.
// MIME dideteksi dari isi file, bukan dari header client.
func SaveUploadedFile(folder string, fileHeader *multipart.FileHeader, maxSize int64) (*SavedFile, error) {
	if maxSize > 0 && fileHeader.Size > maxSize {
		return nil, fmt.Errorf("ukuran file melebihi batas %dKB", maxSize/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, fmt.Errorf("gagal membaca file: %w", err)
	}

	mime := mimetype.Detect(buf.Bytes())

	filename := GenerateUniqueFilename(fileHeader.Filename)
	relPath := filepath.Join(folder, filename)
	absDir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(filepath.Join(configs.UploadDir, relPath), buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("gagal menyimpan file: %w", err)
	}

	return &SavedFile{
		RelativePath: relPath,
		FileName:     sanitizeFilename(fileHeader.Filename),
		Mime:         mime.String(),
		Size:         int64(buf.Len()),
	}, nil
}

// SaveProfileImage menyimpan foto profil sebagai WebP (resize max 512px).
func SaveProfileImage(folder string, fileHeader *multipart.FileHeader, maxSize int64) (*SavedFile, error) {
	if maxSize > 0 && fileHeader.Size > maxSize {
		return nil, fmt.Errorf("ukuran gambar melebihi batas %dKB", maxSize/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("file bukan gambar yang valid: %w", err)
	}
	img = imaging.Fit(img, 512, 512, imaging.Lanczos)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, fmt.Errorf("gagal konversi ke webp: %w", err)
	}

	filename := GenerateUniqueFilename("profile.webp")
	relPath := filepath.Join(folder, filename)
	absDir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(filepath.Join(configs.UploadDir, relPath), out.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	return &SavedFile{
		RelativePath: relPath,
		FileName:     filename,
		Mime:         "image/webp",
		Size:         int64(out.Len()),
	}, nil
}

// AbsoluteUploadPath mengembalikan path absolut dari relative path yang tersimpan di DB.
func AbsoluteUploadPath(relPath string) string {
	return filepath.Join(configs.UploadDir, relPath)
}
