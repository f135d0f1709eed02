package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)

		// === HYDRATE LOCALS YANG DIHARAPKAN HELPER ===

		if v, ok := claims["roles_global"]; ok {
			c.Locals(helperAuth.LocRolesGlobal, v)
		}
		if v, ok := claims["school_roles"]; ok {
			c.Locals(helperAuth.LocSchoolRoles, v)
		}

		// school_id (single session) → LocActiveSchoolID + LocSchoolID
		if sid := strClaim(claims, "school_id"); sid != "" {
			c.Locals(helperAuth.LocActiveSchoolID, sid)
			c.Locals(helperAuth.LocSchoolID, sid)
		}

		// teacher_id → LocTeacherID
		if tid := strClaim(claims, "teacher_id"); tid != "" {
			c.Locals(helperAuth.LocTeacherID, tid)
		}

		// user_id: ambil id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "user_id"))
		}

		// role tunggal dari klaim modern: school_roles > roles_global > "user"
		EnsureRoleLocal(c)

		return c.Next()
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// util: ubah nilai interface{} → []string (robust untuk []string atau []any)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// EnsureRoleLocal mengisi c.Locals("role") dari klaim.
// Prioritas: school_roles (owner > admin > teacher > student > user)
// lalu roles_global, terakhir fallback "user".
func EnsureRoleLocal(c *fiber.Ctx) {
	if v := c.Locals(helperAuth.LocRole); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return
		}
	}

	pick := func(list []string, wanted ...string) string {
		if len(list) == 0 {
			return ""
		}
		has := map[string]struct{}{}
		for _, r := range list {
			r = strings.ToLower(strings.TrimSpace(r))
			if r != "" {
				has[r] = struct{}{}
			}
		}
		for _, w := range wanted {
			if _, ok := has[w]; ok {
				return w
			}
		}
		return ""
	}

	// 1) dari school_roles
	if mr := c.Locals(helperAuth.LocSchoolRoles); mr != nil {
		switch t := mr.(type) {
		case []helperAuth.SchoolRolesEntry:
			for _, e := range t {
				if r := pick(e.Roles, constants.RolePriority...); r != "" {
					c.Locals(helperAuth.LocRole, r)
					return
				}
			}
		case []any:
			for _, it := range t {
				if m, ok := it.(map[string]any); ok {
					roles := readStringSlice(m["roles"])
					if r := pick(roles, constants.RolePriority...); r != "" {
						c.Locals(helperAuth.LocRole, r)
						return
					}
				}
			}
		}
	}

	// 2) dari roles_global
	if rg := c.Locals(helperAuth.LocRolesGlobal); rg != nil {
		roles := readStringSlice(rg)
		if r := pick(roles, constants.RolePriority...); r != "" {
			c.Locals(helperAuth.LocRole, r)
			return
		}
	}

	// 3) fallback: user
	c.Locals(helperAuth.LocRole, constants.RoleUser)
}

// RequireSchoolAdmin: guard role admin/owner untuk group /api/a
func RequireSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsSchoolAdmin(c) {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
		}
		return c.Next()
	}
}
