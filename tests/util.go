package testutil

import (
	"testing"

	"github.com/trezcool/eduplatform/core"
	"github.com/trezcool/eduplatform/core/user"
)

const defaultPassword = "Def4ult#pwd"

// Logger discards everything; it keeps service logging out of test output.
type Logger struct{}

var _ core.Logger = Logger{}

func (Logger) Enable(bool)                  {}
func (Logger) Debug(string, ...interface{}) {}
func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
func (Logger) Fatal(string, ...interface{}) {}

func NewService(reg user.Registry) *user.Service {
	return user.NewService(reg, Logger{})
}

func CreateAdmin(t *testing.T, svc *user.Service, id int, name, email string) *user.Admin {
	t.Helper()
	adm, err := svc.CreateAdmin(user.NewAdmin{
		NewUser:     user.NewUser{ID: id, Name: name, Email: email, Password: defaultPassword},
		Permissions: []string{"roster:manage"},
	})
	if err != nil {
		t.Fatalf("CreateAdmin() failed: %v", err)
	}
	return adm
}

func CreateTeacher(t *testing.T, svc *user.Service, id int, name, email string, subjects ...string) *user.Teacher {
	t.Helper()
	tchr, err := svc.CreateTeacher(user.NewTeacher{
		NewUser:  user.NewUser{ID: id, Name: name, Email: email, Password: defaultPassword},
		Subjects: subjects,
	})
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return tchr
}

func CreateStudent(t *testing.T, svc *user.Service, id int, name, email, grade string) *user.Student {
	t.Helper()
	std, err := svc.CreateStudent(user.NewStudent{
		NewUser: user.NewUser{ID: id, Name: name, Email: email, Password: defaultPassword},
		Grade:   grade,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

func CreateParent(t *testing.T, svc *user.Service, id int, name, email string) *user.Parent {
	t.Helper()
	par, err := svc.CreateParent(user.NewParent{
		NewUser: user.NewUser{ID: id, Name: name, Email: email, Password: defaultPassword},
	})
	if err != nil {
		t.Fatalf("CreateParent() failed: %v", err)
	}
	return par
}
