package user

import (
	"strings"
	"testing"
	"time"

	"github.com/trezcool/eduplatform/core/assignment"
)

func newTestAssignment(t *testing.T, tchr *Teacher, title, subject string) *assignment.Assignment {
	t.Helper()
	a, err := tchr.CreateAssignment(assignment.NewAssignment{
		Title:    title,
		Deadline: time.Now().AddDate(0, 0, 7),
		Subject:  subject,
		ClassID:  "9-A",
	})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return a
}

func TestTeacherCreateAssignment(t *testing.T) {
	tchr := &Teacher{User: User{ID: 2, Role: RoleTeacher}}
	other := &Teacher{User: User{ID: 4, Role: RoleTeacher}}

	a1 := newTestAssignment(t, tchr, "Algebra homework", "Algebra")
	a2 := newTestAssignment(t, tchr, "Physics homework", "Physics")

	// teacher-scoped sequential ids, starting at 1
	if a1.ID != 1 || a2.ID != 2 {
		t.Errorf("assignment ids = (%d, %d), want (1, 2)", a1.ID, a2.ID)
	}
	if a1.TeacherID != tchr.ID {
		t.Errorf("TeacherID = %d, want %d", a1.TeacherID, tchr.ID)
	}

	// ids are not global: another teacher's first assignment is also 1
	b1 := newTestAssignment(t, other, "Essay", "Literature")
	if b1.ID != 1 {
		t.Errorf("other teacher's first assignment id = %d, want 1", b1.ID)
	}

	if got, ok := tchr.Assignment(2); !ok || got != a2 {
		t.Error("Assignment(2) did not return the owned instance")
	}

	// invalid input is rejected
	if _, err := tchr.CreateAssignment(assignment.NewAssignment{Title: "No subject"}); err == nil {
		t.Error("CreateAssignment() accepted an invalid input")
	}
}

func TestTeacherGradeAssignment(t *testing.T) {
	tchr := &Teacher{User: User{ID: 2, Role: RoleTeacher}}
	std := &Student{User: User{ID: 3, Role: RoleStudent}, Grade: "9-A"}
	a := newTestAssignment(t, tchr, "Algebra homework", "Algebra")

	g := tchr.GradeAssignment(a, std, 4, 1)

	// all three writes of the scoring event
	if value, ok := a.GradeFor(std.ID); !ok || value != 4 {
		t.Errorf("assignment grade = (%d, %v), want (4, true)", value, ok)
	}
	if g.ID != 1 || g.StudentID != std.ID || g.Subject != "Algebra" || g.Value != 4 || g.TeacherID != tchr.ID {
		t.Errorf("grade record = %+v", g)
	}
	if g.Date.IsZero() {
		t.Error("grade record has no issue date")
	}
	history := std.SubjectGrades("Algebra")
	if len(history) != 1 || history[len(history)-1] != 4 {
		t.Errorf("subject history = %v, want [4]", history)
	}

	// a second grade appends to the same subject's history
	tchr.GradeAssignment(a, std, 5, 2)
	if history := std.SubjectGrades("Algebra"); len(history) != 2 || history[1] != 5 {
		t.Errorf("subject history = %v, want [4 5]", history)
	}
}

func TestStudentAverageGrade(t *testing.T) {
	tests := []struct {
		name    string
		history map[string][]int
		want    float64
	}{
		{name: "no grades yet", want: 0},
		{name: "single subject", history: map[string][]int{"Algebra": {4, 5}}, want: 4.5},
		{name: "across subjects", history: map[string][]int{"Algebra": {4}, "Physics": {5, 3}}, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			std := &Student{User: User{ID: 3, Role: RoleStudent}}
			for subject, values := range tt.history {
				for _, value := range values {
					std.recordGrade(subject, value)
				}
			}
			if got := std.AverageGrade(); got != tt.want {
				t.Errorf("AverageGrade() = %v, want %v", got, tt.want)
			}
		})
	}
}

// end-to-end over a single assignment: create, submit, grade, aggregate
func TestAssignmentRoundTrip(t *testing.T) {
	tchr := &Teacher{User: User{ID: 2, Role: RoleTeacher}}
	std := &Student{User: User{ID: 3, Role: RoleStudent}, Grade: "9-A"}

	a := newTestAssignment(t, tchr, "Algebra homework", "Algebra")
	std.SubmitAssignment(a, "Answer: x = 5")

	if content, ok := a.Submission(std.ID); !ok || content != "Answer: x = 5" {
		t.Errorf("Submission() = (%q, %v), want the submitted content", content, ok)
	}
	if status := std.Assignments[a.ID]; status != StatusSubmitted {
		t.Errorf("student status = %q, want %q", status, StatusSubmitted)
	}

	tchr.GradeAssignment(a, std, 5, 1)

	if got := std.AverageGrade(); got != 5.0 {
		t.Errorf("AverageGrade() = %v, want 5.0", got)
	}
	st := a.Status()
	if len(st.Graded) != 1 || st.Graded[0] != std.ID {
		t.Errorf("Status().Graded = %v, want [%d]", st.Graded, std.ID)
	}
	if len(st.Submitted) != 1 || st.Submitted[0] != std.ID {
		t.Errorf("Status().Submitted = %v, want [%d]", st.Submitted, std.ID)
	}

	// resubmission overwrites, no history
	std.SubmitAssignment(a, "Answer: x = 6")
	if content, _ := a.Submission(std.ID); content != "Answer: x = 6" {
		t.Errorf("Submission() after resubmit = %q, want the new content", content)
	}
}

func TestTeacherStudentProgress(t *testing.T) {
	tchr := &Teacher{User: User{ID: 2, Role: RoleTeacher}}
	std := &Student{User: User{ID: 3, Role: RoleStudent}}

	a1 := newTestAssignment(t, tchr, "Algebra homework", "Algebra")
	a2 := newTestAssignment(t, tchr, "Physics homework", "Physics")
	newTestAssignment(t, tchr, "Ungraded one", "Algebra")

	tchr.GradeAssignment(a1, std, 4, 1)
	tchr.GradeAssignment(a2, std, 5, 2)

	report := tchr.StudentProgress(std.ID)
	if len(report) != 2 || report["Algebra homework"] != 4 || report["Physics homework"] != 5 {
		t.Errorf("StudentProgress() = %v", report)
	}

	if report := tchr.StudentProgress(99); len(report) != 0 {
		t.Errorf("StudentProgress(99) = %v, want empty", report)
	}
}

func TestParent(t *testing.T) {
	tchr := &Teacher{User: User{ID: 2, Role: RoleTeacher}}
	std := &Student{User: User{ID: 3, Role: RoleStudent}, Grade: "9-A"}
	par := &Parent{User: User{ID: 5, Role: RoleParent}}
	par.AddChild(std)

	a := newTestAssignment(t, tchr, "Algebra homework", "Algebra")
	std.SubmitAssignment(a, "Answer: x = 5")
	tchr.GradeAssignment(a, std, 4, 1)

	grades, err := par.ChildGrades(std.ID)
	if err != nil {
		t.Fatalf("ChildGrades() failed: %v", err)
	}
	if len(grades["Algebra"]) != 1 || grades["Algebra"][0] != 4 {
		t.Errorf("ChildGrades() = %v", grades)
	}

	statuses, err := par.ChildAssignments(std.ID)
	if err != nil {
		t.Fatalf("ChildAssignments() failed: %v", err)
	}
	if statuses[a.ID] != StatusSubmitted {
		t.Errorf("ChildAssignments() = %v", statuses)
	}

	// peeking at the child's inbox does not consume unread status
	reg := &testRegistry{}
	if err := reg.Add(std); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := tchr.Notify("Graded!", std.ID, reg); err != nil {
		t.Fatalf("Notify() failed: %v", err)
	}
	notifs, err := par.ChildNotifications(std.ID)
	if err != nil {
		t.Fatalf("ChildNotifications() failed: %v", err)
	}
	if len(notifs) != 1 || notifs[0].Read() {
		t.Errorf("ChildNotifications() = %v, want one unread entry", notifs)
	}

	// not their child
	if _, err := par.ChildGrades(99); err != ErrNotFound {
		t.Errorf("ChildGrades(99) error = %v, want ErrNotFound", err)
	}
}

func TestAdminRosterManagement(t *testing.T) {
	adm := &Admin{User: User{ID: 1, Role: RoleAdmin}, Permissions: []string{"roster:manage"}}
	tchr := &Teacher{User: User{ID: 2, Role: RoleTeacher}}
	std := &Student{User: User{ID: 3, Role: RoleStudent}}
	reg := &testRegistry{}

	if err := adm.AddUser(tchr, reg); err != nil {
		t.Fatalf("AddUser() failed: %v", err)
	}
	if err := adm.AddUser(std, reg); err != nil {
		t.Fatalf("AddUser() failed: %v", err)
	}
	if err := adm.AddUser(std, reg); err != ErrDuplicateID {
		t.Errorf("AddUser() duplicate error = %v, want ErrDuplicateID", err)
	}

	if removed := adm.RemoveUser(std.ID, reg); removed != 1 {
		t.Errorf("RemoveUser() = %d, want 1", removed)
	}
	if removed := adm.RemoveUser(std.ID, reg); removed != 0 {
		t.Errorf("RemoveUser() repeat = %d, want 0", removed)
	}
}

func TestAdminGenerateReport(t *testing.T) {
	adm := &Admin{User: User{ID: 1, Role: RoleAdmin}}
	reg := &testRegistry{}
	for _, acct := range []Account{
		adm,
		&Teacher{User: User{ID: 2, Role: RoleTeacher}},
		&Student{User: User{ID: 3, Role: RoleStudent}},
		&Student{User: User{ID: 4, Role: RoleStudent}},
	} {
		if err := reg.Add(acct); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	report := adm.GenerateReport(reg)
	if !strings.Contains(report, "4 registered users") {
		t.Errorf("report %q does not mention the roster size", report)
	}
	if !strings.Contains(report, "1 admins, 1 teachers, 2 students, 0 parents") {
		t.Errorf("report %q does not break the roster down by role", report)
	}
}
