package constants

// User roles, matching the `role` column on users.
const (
	RoleAdmin        = "admin"
	RoleTeacher      = "teacher"
	RoleStudent      = "student"
	RoleParent       = "parent"
	RoleAccountant   = "accountant"
	RoleLibrarian    = "librarian"
	RoleReceptionist = "receptionist"
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
		RoleAccountant,
		RoleLibrarian,
		RoleReceptionist,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	AdminOrTeacher = []string{
		RoleAdmin,
		RoleTeacher,
	}

	AdminOrAccountant = []string{
		RoleAdmin,
		RoleAccountant,
	}
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	for _, r := range AllRoles {
		if r == s {
			return true
		}
	}
	return false
}
