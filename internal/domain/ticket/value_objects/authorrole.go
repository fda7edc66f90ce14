package value_objects

import "fmt"

// AuthorRole is stored on each comment at write time so transcript styling
// never depends on comparing author and owner ids at read time.
type AuthorRole string

const (
	AuthorRoleUser  AuthorRole = "user"
	AuthorRoleStaff AuthorRole = "staff"
)

func (r AuthorRole) String() string {
	return string(r)
}

func (r AuthorRole) IsValid() bool {
	return r == AuthorRoleUser || r == AuthorRoleStaff
}

func (r AuthorRole) IsStaff() bool {
	return r == AuthorRoleStaff
}

func NewAuthorRole(s string) (AuthorRole, error) {
	r := AuthorRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid author role: %s", s)
	}
	return r, nil
}
