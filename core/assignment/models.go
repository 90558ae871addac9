package assignment

import (
	"sort"
	"time"

	"github.com/trezcool/eduplatform/core"
)

// Grade value bounds on the 1..5 scale.
const (
	MinGradeValue = 1
	MaxGradeValue = 5
)

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" validate:"required"`
	Subject     string    `json:"subject" validate:"required"`
	ClassID     string    `json:"class_id" validate:"required,classlabel"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.Subject = core.CleanString(na.Subject)
	na.ClassID = core.CleanString(na.ClassID)
	return core.TranslateError(core.Validate.Struct(na))
}

// Assignment is a teacher-authored task holding per-student submissions and
// per-student grade values. The Assignment as a whole has no single lifecycle
// state, only a set of per-student submission/grade pairs. Ids are scoped to
// the authoring teacher, not globally unique.
type Assignment struct {
	ID          int
	Title       string
	Description string
	Deadline    time.Time
	Subject     string
	TeacherID   int
	ClassID     string

	submissions map[int]string // student id -> content
	grades      map[int]int    // student id -> value
}

func New(id, teacherID int, na NewAssignment) *Assignment {
	return &Assignment{
		ID:          id,
		Title:       na.Title,
		Description: na.Description,
		Deadline:    na.Deadline,
		Subject:     na.Subject,
		TeacherID:   teacherID,
		ClassID:     na.ClassID,
	}
}

// AddSubmission upserts a student's submission; resubmission overwrites the
// previous content, no history is kept.
func (a *Assignment) AddSubmission(studentID int, content string) {
	if a.submissions == nil {
		a.submissions = make(map[int]string)
	}
	a.submissions[studentID] = content
}

// SetGrade upserts a student's grade value, whether or not a submission exists.
func (a *Assignment) SetGrade(studentID, value int) {
	if a.grades == nil {
		a.grades = make(map[int]int)
	}
	a.grades[studentID] = value
}

func (a *Assignment) Submission(studentID int) (string, bool) {
	content, ok := a.submissions[studentID]
	return content, ok
}

func (a *Assignment) GradeFor(studentID int) (int, bool) {
	value, ok := a.grades[studentID]
	return value, ok
}

// Status is a read-only projection of an Assignment's per-student progress.
type Status struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Deadline  time.Time `json:"deadline"`
	Submitted []int     `json:"submitted"`
	Graded    []int     `json:"graded"`
}

func (a *Assignment) Status() Status {
	st := Status{
		ID:        a.ID,
		Title:     a.Title,
		Deadline:  a.Deadline,
		Submitted: make([]int, 0, len(a.submissions)),
		Graded:    make([]int, 0, len(a.grades)),
	}
	for id := range a.submissions {
		st.Submitted = append(st.Submitted, id)
	}
	for id := range a.grades {
		st.Graded = append(st.Graded, id)
	}
	sort.Ints(st.Submitted)
	sort.Ints(st.Graded)
	return st
}
