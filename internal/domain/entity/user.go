package entity

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Email        string     `bson:"email" json:"email"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	FullName     string     `bson:"full_name" json:"full_name"`
	Roles        []UserRole `bson:"roles" json:"roles"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// UserRole represents a role held by a user
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleOpsManager UserRole = "ops_manager"
	UserRoleRecruiter  UserRole = "recruiter"
)

func DefaultRoles() []UserRole {
	return []UserRole{UserRoleRecruiter}
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the user may access the admin or ops surfaces.
func (u *User) IsStaff() bool {
	return u.HasRole(UserRoleAdmin) || u.HasRole(UserRoleOpsManager)
}

// RoleGrant is an audit record written whenever a role is granted to a user.
type RoleGrant struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Role      UserRole  `bson:"role" json:"role"`
	GrantedBy string    `bson:"granted_by" json:"granted_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// AdminWhitelistEntry marks an email as eligible for the admin role.
type AdminWhitelistEntry struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
