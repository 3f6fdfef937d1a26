package constants

import "fmt"

// Role yang dikenal aplikasi
const (
	RoleStudent        = "student"
	RoleTeacher        = "teacher"
	RoleTeacherPending = "teacher_pending"
	RoleAdmin          = "admin"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "Hanya teacher yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleTeacherPending,
		RoleAdmin,
	}

	TeacherOnly = []string{
		RoleTeacher,
	}

	TeacherAndAdmin = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
