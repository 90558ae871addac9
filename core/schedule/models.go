package schedule

import "time"

// Lesson is one time-slotted entry in a Schedule.
type Lesson struct {
	Subject   string `json:"subject"`
	TeacherID int    `json:"teacher_id"`
}

// Schedule holds one class's lessons for one day, keyed by time slot
// ("08:30"). At most one lesson per slot; a later add at the same slot
// overwrites the earlier one.
type Schedule struct {
	ID      int
	ClassID string
	Day     time.Weekday

	lessons map[string]Lesson
}

func New(id int, classID string, day time.Weekday) *Schedule {
	return &Schedule{ID: id, ClassID: classID, Day: day}
}

func (s *Schedule) AddLesson(at, subject string, teacherID int) {
	if s.lessons == nil {
		s.lessons = make(map[string]Lesson)
	}
	s.lessons[at] = Lesson{Subject: subject, TeacherID: teacherID}
}

// RemoveLesson deletes the lesson at the given slot if present, else no-op.
func (s *Schedule) RemoveLesson(at string) {
	delete(s.lessons, at)
}

// Lessons returns a copy of the time slot map.
func (s *Schedule) Lessons() map[string]Lesson {
	lessons := make(map[string]Lesson, len(s.lessons))
	for at, lesson := range s.lessons {
		lessons[at] = lesson
	}
	return lessons
}
