package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/eduplatform/core/assignment"
)

// Submission statuses tracked on a Student's assignment map.
const StatusSubmitted = "submitted"

// Student is a User that submits to Assignments and accumulates grade values
// per subject. The per-subject history is a denormalized cache of values only;
// it is written together with the canonical Grade record on every grading
// call and never recomputed.
type Student struct {
	User
	Grade       string         // cohort label, e.g. "9-A"
	Subjects    map[string]int // subject -> teacher id
	Assignments map[int]string // assignment id -> status

	history map[string][]int // subject -> grade values
}

// SubmitAssignment records the student's submission on the assignment and
// tracks its status locally.
func (s *Student) SubmitAssignment(a *assignment.Assignment, content string) {
	a.AddSubmission(s.ID, content)
	if s.Assignments == nil {
		s.Assignments = make(map[int]string)
	}
	s.Assignments[a.ID] = StatusSubmitted
}

// recordGrade appends a value to the per-subject history, creating the
// subject's list on first grade.
func (s *Student) recordGrade(subject string, value int) {
	if s.history == nil {
		s.history = make(map[string][]int)
	}
	s.history[subject] = append(s.history[subject], value)
}

// SubjectGrades returns the student's recorded values for one subject, oldest
// first. The list is empty when no grade has been recorded yet.
func (s *Student) SubjectGrades(subject string) []int {
	values := make([]int, len(s.history[subject]))
	copy(values, s.history[subject])
	return values
}

// ViewGrades returns the full subject -> values mapping.
func (s *Student) ViewGrades() map[string][]int {
	grades := make(map[string][]int, len(s.history))
	for subject := range s.history {
		grades[subject] = s.SubjectGrades(subject)
	}
	return grades
}

// AverageGrade is the arithmetic mean over all values across all subjects;
// 0 when the student has no recorded grades yet.
func (s *Student) AverageGrade() float64 {
	var total, count int
	for _, values := range s.history {
		for _, value := range values {
			total += value
		}
		count += len(values)
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// Teacher is a User that authors Assignments, grades Student submissions and
// issues Grade records. It exclusively owns the assignments it creates.
type Teacher struct {
	User
	Subjects []string
	Classes  []string

	assignments map[int]*assignment.Assignment
}

// CreateAssignment validates the input and allocates a new Assignment under
// the next teacher-scoped sequential id (one greater than the count of
// assignments already owned; not globally unique across teachers).
func (t *Teacher) CreateAssignment(na assignment.NewAssignment) (*assignment.Assignment, error) {
	if err := na.Validate(); err != nil {
		return nil, err
	}
	if t.assignments == nil {
		t.assignments = make(map[int]*assignment.Assignment)
	}
	id := len(t.assignments) + 1
	a := assignment.New(id, t.ID, na)
	t.assignments[id] = a
	return a, nil
}

// GradeAssignment performs the three coupled writes of one scoring event:
// the value goes into the assignment's grade map, an immutable Grade record
// is issued, and the value is appended to the student's per-subject history.
// The returned Grade is the canonical record of the event.
func (t *Teacher) GradeAssignment(a *assignment.Assignment, s *Student, value, gradeID int) *assignment.Grade {
	a.SetGrade(s.ID, value)
	g := assignment.NewGrade(gradeID, s.ID, a.Subject, value, t.ID)
	s.recordGrade(a.Subject, value)
	return g
}

// Assignment returns an owned assignment by its teacher-scoped id.
func (t *Teacher) Assignment(id int) (*assignment.Assignment, bool) {
	a, ok := t.assignments[id]
	return a, ok
}

// StudentProgress reports the grade values a student has received across the
// teacher's owned assignments, keyed by assignment title.
func (t *Teacher) StudentProgress(studentID int) map[string]int {
	report := make(map[string]int)
	for _, a := range t.assignments {
		if value, ok := a.GradeFor(studentID); ok {
			report[a.Title] = value
		}
	}
	return report
}

// Parent is a User holding weak references to child Students; it does not own
// their lifecycle and all of its operations are read-only.
type Parent struct {
	User

	children []*Student
}

func (p *Parent) AddChild(s *Student) {
	p.children = append(p.children, s)
}

func (p *Parent) Children() []*Student {
	children := make([]*Student, len(p.children))
	copy(children, p.children)
	return children
}

func (p *Parent) child(childID int) (*Student, error) {
	for _, c := range p.children {
		if c.ID == childID {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// ChildGrades returns a child's full subject -> values mapping.
func (p *Parent) ChildGrades(childID int) (map[string][]int, error) {
	c, err := p.child(childID)
	if err != nil {
		return nil, err
	}
	return c.ViewGrades(), nil
}

// ChildAssignments returns a child's assignment id -> status mapping.
func (p *Parent) ChildAssignments(childID int) (map[int]string, error) {
	c, err := p.child(childID)
	if err != nil {
		return nil, err
	}
	statuses := make(map[int]string, len(c.Assignments))
	for id, status := range c.Assignments {
		statuses[id] = status
	}
	return statuses, nil
}

// ChildNotifications peeks at a child's inbox without consuming unread
// status; the parent is not the recipient so nothing is marked read.
func (p *Parent) ChildNotifications(childID int) ([]*Notification, error) {
	c, err := p.child(childID)
	if err != nil {
		return nil, err
	}
	return c.Inbox(), nil
}

// Admin is a User with roster-mutation capability the other roles lack.
type Admin struct {
	User
	Permissions []string
}

// AddUser registers an account in the roster.
func (adm *Admin) AddUser(acct Account, reg Registry) error {
	return reg.Add(acct)
}

// RemoveUser removes every roster entry with a matching id and reports how
// many were removed.
func (adm *Admin) RemoveUser(id int, reg Registry) int {
	return reg.Remove(id)
}

// GenerateReport produces a timestamped roster summary with a unique
// reference.
func (adm *Admin) GenerateReport(reg Registry) string {
	var admins, teachers, students, parents int
	accts := reg.All()
	for _, acct := range accts {
		switch acct.Base().Role {
		case RoleAdmin:
			admins++
		case RoleTeacher:
			teachers++
		case RoleStudent:
			students++
		case RoleParent:
			parents++
		}
	}
	return fmt.Sprintf(
		"report %s: %d registered users (%d admins, %d teachers, %d students, %d parents) as of %s",
		uuid.New(), len(accts), admins, teachers, students, parents,
		NowFunc().UTC().Format(time.RFC3339),
	)
}
