package models

import (
	"strings"
	"time"
)

// UserRecord is the detail payload of /user/detail.
type UserRecord struct {
	PK              int64      `json:"pk"`
	Model           string     `json:"model"`
	Fields          UserFields `json:"fields"`
	Profile         string     `json:"profile,omitempty"`
	CreatedUserName string     `json:"created_user_name"`
	UpdatedUserName string     `json:"updated_user_name"`
}

type UserFields struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Dob       string `json:"dob"`
	Address   string `json:"address"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

const (
	UserTypeAdmin = "Admin"
	UserTypeUser  = "User"

	DefaultAvatar = "user-default.png"
)

func (u *UserRecord) TypeLabel() string {
	if u.Fields.Type == "a" {
		return UserTypeAdmin
	}
	return UserTypeUser
}

// AvatarFile is the file name the avatar is served under: the last path
// segment of Profile, or DefaultAvatar when no profile is stored. A profile
// ending in "/" yields an empty name.
func (u *UserRecord) AvatarFile() string {
	if u.Profile == "" {
		return DefaultAvatar
	}
	parts := strings.Split(u.Profile, "/")
	return parts[len(parts)-1]
}

// AuditLog is one row of the panel's action log.
type AuditLog struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Success   bool      `json:"success"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}
