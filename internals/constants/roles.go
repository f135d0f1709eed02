package constants

// Role yang dikenal di scope sekolah
const (
	RoleUser    = "user"
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	// urutan prioritas saat token membawa lebih dari satu role
	RolePriority = []string{RoleOwner, RoleAdmin, RoleTeacher, RoleStudent, RoleUser}

	TeacherAndAbove = []string{RoleTeacher, RoleAdmin, RoleOwner}

	AdminAndAbove = []string{RoleAdmin, RoleOwner}

	OwnerOnly = []string{RoleOwner}
)
