package constants

import "fmt"

const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// RoleLevel adalah tingkat hak akses minimum yang diminta sebuah route.
type RoleLevel int

const (
	LevelAdmin RoleLevel = iota + 1
	LevelSuperAdmin
)

func (l RoleLevel) String() string {
	switch l {
	case LevelAdmin:
		return "admin"
	case LevelSuperAdmin:
		return "super-admin"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleSuperAdmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

// Allows: apakah role memenuhi level yang diminta.
func (l RoleLevel) Allows(role string) bool {
	var allowed []string
	switch l {
	case LevelAdmin:
		allowed = AdminAndAbove
	case LevelSuperAdmin:
		allowed = SuperAdminOnly
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Pesan error standar; klien lama mencocokkan string ini apa adanya.
const (
	MsgUnauthorized = "Unauthorized"
	MsgForbidden    = "Forbidden"
	MsgUserExist    = "user is exist"
	MsgLoginFailed  = "email or password is wrong"
	MsgInternal     = "Internal Server Error"
)

func NotFound(entity string) string {
	return fmt.Sprintf("%s not found", entity)
}
