// file: internals/helpers/auth/school_context.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// Nama locals yang di-set middleware AuthJWT
const (
	LocUserID         = "user_id"
	LocSchoolID       = "school_id"
	LocActiveSchoolID = "active_school_id"
	LocTeacherID      = "teacher_id"
	LocRolesGlobal    = "roles_global"
	LocSchoolRoles    = "school_roles"
	LocRole           = "role"
)

type SchoolRolesEntry struct {
	SchoolID uuid.UUID `json:"school_id"`
	Roles    []string  `json:"roles"`
}

type RolesClaim struct {
	RolesGlobal []string           `json:"roles_global"`
	SchoolRoles []SchoolRolesEntry `json:"school_roles"`
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, false
	}
	switch t := v.(type) {
	case uuid.UUID:
		return t, t != uuid.Nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(t))
		return id, err == nil && id != uuid.Nil
	}
	return uuid.Nil, false
}

// GetUserIDFromToken: user_id wajib ada setelah AuthJWT
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocUserID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
}

// GetSchoolIDFromToken: scope sekolah aktif dari token
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := localUUID(c, LocActiveSchoolID); ok {
		return id, nil
	}
	if id, ok := localUUID(c, LocSchoolID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school scope tidak ditemukan di token")
}

// ResolveSchoolID: ambil :school_id dari path dan pastikan cocok dengan token.
// Kalau token tidak membawa scope sekolah → 401, kalau beda → 403.
func ResolveSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("school_id"))
	if raw == "" {
		return GetSchoolIDFromToken(c)
	}
	pathID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "school_id tidak valid")
	}
	tokID, err := GetSchoolIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	if tokID != pathID {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "school scope mismatch")
	}
	return pathID, nil
}

func hasRole(c *fiber.Ctx, wanted ...string) bool {
	v := c.Locals(LocRole)
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for _, w := range wanted {
		if s == w {
			return true
		}
	}
	return false
}

func IsSchoolAdmin(c *fiber.Ctx) bool { return hasRole(c, constants.AdminAndAbove...) }
func IsTeacher(c *fiber.Ctx) bool     { return hasRole(c, constants.RoleTeacher) }
func IsOwner(c *fiber.Ctx) bool       { return hasRole(c, constants.RoleOwner) }
