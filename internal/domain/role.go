package domain

// UserRole is the role carried by the caller's access token.
type UserRole string

const (
	UserRoleWorker  UserRole = "worker"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleWorker, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}

// CanManage reports whether the role may act on other users' entries.
func (r UserRole) CanManage() bool {
	return r == UserRoleManager || r == UserRoleAdmin
}

// ParseUserRole maps an unknown or empty role to worker.
func ParseUserRole(s string) UserRole {
	r := UserRole(s)
	if !r.IsValid() {
		return UserRoleWorker
	}
	return r
}
