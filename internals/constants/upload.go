package constants

import (
	"path/filepath"
	"strings"
)

// Folder upload per jenis file (relative terhadap UPLOAD_DIR)
const (
	UploadDirMaterials     = "materials"
	UploadDirProfileImages = "profile_images"
	UploadDirTeacherProofs = "teacher_proofs"
)

// Batas ukuran upload
const (
	MaxMaterialSize     = 50 * 1024 * 1024 // 50MB
	MaxProfileImageSize = 2 * 1024 * 1024  // 2MB
	MaxProofSize        = 10 * 1024 * 1024 // 10MB
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp3", ".wav":
		return 2 // Audio
	case ".doc", ".docx":
		return 3 // DOCX
	case ".pdf":
		return 4 // PDF
	case ".ppt", ".pptx":
		return 5 // PPT
	case ".png", ".jpg", ".jpeg", ".webp":
		return 6 // Image
	default:
		return 99 // Tidak diketahui
	}
}
