package models

// Role is the permission level of an account.
type Role string

const (
	// RoleAdmin manages keys and staff accounts.
	RoleAdmin Role = "ADMIN"
	// RoleUser checks keys in and out.
	RoleUser Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an office account used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the generated identity of the account. Immutable.
	ID string `json:"id"`

	// Username is the login name. Uniqueness is not enforced by the directory.
	Username string `json:"username"`

	// SecretHash is the bcrypt hash of the account secret.
	// It is persisted but never returned to API callers, see [User.Public].
	SecretHash string `json:"passwordHash,omitempty"`

	// Role decides which operations the account may perform.
	Role Role `json:"role"`

	// Phone is an optional contact phone number.
	Phone string `json:"phone,omitempty"`
}

// IsAdmin reports whether the account has the ADMIN role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns a copy of u without credential material.
func (u User) Public() User {
	u.SecretHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "accounts"
}
