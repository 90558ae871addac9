package assignment

import "time"

var NowFunc = time.Now // mockable

// Grade is one canonical scoring event tied to a student, a subject and the
// issuing teacher. It is immutable once issued, except for UpdateValue which
// replaces the value in place.
type Grade struct {
	ID        int
	StudentID int
	Subject   string
	Value     int
	Date      time.Time // issue date, UTC
	TeacherID int
}

func NewGrade(id, studentID int, subject string, value, teacherID int) *Grade {
	return &Grade{
		ID:        id,
		StudentID: studentID,
		Subject:   subject,
		Value:     value,
		Date:      NowFunc().UTC(),
		TeacherID: teacherID,
	}
}

// UpdateValue replaces the recorded value of a previously issued grade.
func (g *Grade) UpdateValue(value int) {
	g.Value = value
}
