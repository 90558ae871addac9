package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/eduplatform/core"
)

// Roles. A role is fixed at construction and never reassigned.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

var AllRoles = []Role{RoleAdmin, RoleTeacher, RoleStudent, RoleParent}

// Account is the closed polymorphism contract implemented by every role
// variant. The Account instance registered in the roster is the one
// notifications are delivered to: identity matters, not equality.
type Account interface {
	Base() *User
	Profile() Profile
}

// User carries the identity and the private notification inbox shared by all
// role variants. The id is caller-assigned, unique across the roster and
// immutable.
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time // UTC

	inbox []*Notification // received, addressed to this user; owned
	sent  []*Notification // outgoing view; referenced, not owned
}

func (u *User) Base() *User { return u }

func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u *User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u *User) IsStudent() bool { return u.Role == RoleStudent }
func (u *User) IsParent() bool  { return u.Role == RoleParent }

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// Profile is a read-only snapshot of a user's identity.
type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// ProfileUpdate defines what information may be provided to modify an
// existing User. Empty fields are left unchanged.
type ProfileUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// UpdateProfile applies only the supplied fields.
func (u *User) UpdateProfile(up ProfileUpdate) error {
	up.Name = core.CleanString(up.Name)
	up.Email = core.CleanString(up.Email, true /* lower */)
	if err := core.TranslateError(core.Validate.Struct(&up)); err != nil {
		return err
	}

	if up.Name != "" {
		u.Name = up.Name
	}
	if up.Email != "" {
		u.Email = up.Email
	}
	if up.Password != "" {
		return u.SetPassword(up.Password)
	}
	return nil
}

// NewUser contains the identity information needed to create a user of any role.
type NewUser struct {
	ID       int    `json:"id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (nu *NewUser) clean() {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
}

func (nu *NewUser) Validate() error {
	nu.clean()
	return core.TranslateError(core.Validate.Struct(nu))
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	NewUser
	Grade string `json:"grade" validate:"required,classlabel"`
}

func (ns *NewStudent) Validate() error {
	ns.clean()
	ns.Grade = core.CleanString(ns.Grade)
	return core.TranslateError(core.Validate.Struct(ns))
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	NewUser
	Subjects []string `json:"subjects"`
	Classes  []string `json:"classes" validate:"omitempty,dive,classlabel"`
}

func (nt *NewTeacher) Validate() error {
	nt.clean()
	for i, subj := range nt.Subjects {
		nt.Subjects[i] = core.CleanString(subj)
	}
	for i, class := range nt.Classes {
		nt.Classes[i] = core.CleanString(class)
	}
	return core.TranslateError(core.Validate.Struct(nt))
}

// NewParent contains information needed to create a new Parent.
type NewParent struct {
	NewUser
}

// NewAdmin contains information needed to create a new Admin.
type NewAdmin struct {
	NewUser
	Permissions []string `json:"permissions"`
}

func (na *NewAdmin) Validate() error {
	na.clean()
	for i, perm := range na.Permissions {
		na.Permissions[i] = core.CleanString(perm, true /* lower */)
	}
	return core.TranslateError(core.Validate.Struct(na))
}
