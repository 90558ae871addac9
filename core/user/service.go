package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/trezcool/eduplatform/core"
	"github.com/trezcool/eduplatform/core/assignment"
)

var (
	// errors
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateID       = errors.New("a user with this id is already registered")
	ErrRecipientNotFound = errors.New("notification recipient not found in roster")
)

type (
	// Registry is the shared roster of all registered accounts. Notification
	// delivery and admin management both go through it; an account taking
	// part in delivery must be the very instance held here.
	Registry interface {
		// Add registers an account, enforcing id uniqueness.
		Add(acct Account) error
		// Remove drops every entry whose id matches and reports how many were
		// removed, keeping the remaining entries in their original relative order.
		Remove(id int) int
		Get(id int) (Account, error)
		// All returns accounts in registration order.
		All() []Account
	}

	Service struct {
		reg Registry
		log core.Logger
	}
)

func NewService(reg Registry, log core.Logger) *Service {
	return &Service{reg: reg, log: log}
}

func newUser(nu NewUser, role Role) (User, error) {
	usr := User{
		ID:        nu.ID,
		Name:      nu.Name,
		Email:     nu.Email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return usr, nil
}

func (svc *Service) CreateAdmin(na NewAdmin) (*Admin, error) {
	if err := na.Validate(); err != nil {
		return nil, err
	}
	usr, err := newUser(na.NewUser, RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &Admin{User: usr, Permissions: na.Permissions}, nil
}

func (svc *Service) CreateTeacher(nt NewTeacher) (*Teacher, error) {
	if err := nt.Validate(); err != nil {
		return nil, err
	}
	usr, err := newUser(nt.NewUser, RoleTeacher)
	if err != nil {
		return nil, err
	}
	return &Teacher{User: usr, Subjects: nt.Subjects, Classes: nt.Classes}, nil
}

func (svc *Service) CreateStudent(ns NewStudent) (*Student, error) {
	if err := ns.Validate(); err != nil {
		return nil, err
	}
	usr, err := newUser(ns.NewUser, RoleStudent)
	if err != nil {
		return nil, err
	}
	return &Student{User: usr, Grade: ns.Grade}, nil
}

func (svc *Service) CreateParent(np NewParent) (*Parent, error) {
	if err := np.Validate(); err != nil {
		return nil, err
	}
	usr, err := newUser(np.NewUser, RoleParent)
	if err != nil {
		return nil, err
	}
	return &Parent{User: usr}, nil
}

// Register adds an account to the roster on an admin's behalf.
func (svc *Service) Register(adm *Admin, acct Account) error {
	if err := adm.AddUser(acct, svc.reg); err != nil {
		return err
	}
	svc.log.Info(fmt.Sprintf("user %d (%s) added to roster", acct.Base().ID, acct.Base().Role), acct)
	return nil
}

// Unregister removes every roster entry matching id.
func (svc *Service) Unregister(adm *Admin, id int) int {
	removed := adm.RemoveUser(id, svc.reg)
	svc.log.Info(fmt.Sprintf("removed %d roster entries for user id %d", removed, id))
	return removed
}

func (svc *Service) Get(id int) (Account, error) { return svc.reg.Get(id) }

func (svc *Service) QueryAll() []Account { return svc.reg.All() }

// SubmitAssignment records a student's submission against an assignment.
func (svc *Service) SubmitAssignment(s *Student, a *assignment.Assignment, content string) {
	s.SubmitAssignment(a, content)
	svc.log.Info(fmt.Sprintf("student %d submitted assignment %d (%s)", s.ID, a.ID, a.Title), s)
}

// GradeAssignment checks the value against the grading scale and applies the
// three coupled writes of one scoring event.
func (svc *Service) GradeAssignment(t *Teacher, a *assignment.Assignment, s *Student, value, gradeID int) (*assignment.Grade, error) {
	if value < assignment.MinGradeValue || value > assignment.MaxGradeValue {
		err := fmt.Errorf("grade value %d out of scale [%d, %d]", value, assignment.MinGradeValue, assignment.MaxGradeValue)
		return nil, core.NewValidationError(err, core.FieldError{Field: "value", Error: err.Error()})
	}
	g := t.GradeAssignment(a, s, value, gradeID)
	svc.log.Info(fmt.Sprintf("teacher %d graded student %d on assignment %d: %d", t.ID, s.ID, a.ID, value), t)
	return g, nil
}

// Notify sends a message from sender to the user registered under
// recipientID. A missing recipient is reported but does not abort the flow:
// the notification stays recorded on the sender's outgoing view.
func (svc *Service) Notify(sender Account, message string, recipientID int) (*Notification, error) {
	n, err := sender.Base().Notify(message, recipientID, svc.reg)
	if err != nil {
		svc.log.Warn(fmt.Sprintf("notification %d from user %d dropped: no recipient %d in roster", n.ID, n.SenderID, recipientID))
		return n, err
	}
	svc.log.Info(fmt.Sprintf("notification %d from user %d delivered to user %d", n.ID, n.SenderID, recipientID), sender)
	return n, nil
}

// Report produces the admin's roster summary.
func (svc *Service) Report(adm *Admin) string {
	report := adm.GenerateReport(svc.reg)
	svc.log.Info("system report generated", adm)
	return report
}
