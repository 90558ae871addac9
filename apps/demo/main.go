package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/trezcool/eduplatform/core"
	"github.com/trezcool/eduplatform/core/assignment"
	"github.com/trezcool/eduplatform/core/schedule"
	"github.com/trezcool/eduplatform/core/user"
	logsvc "github.com/trezcool/eduplatform/services/logger"
	inmemreg "github.com/trezcool/eduplatform/storage/registry/inmem"
)

// Walks the whole workflow once: the admin populates the roster, the teacher
// creates assignments, the student submits, the teacher grades and notifies,
// the student reads the notification.
func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, "DEMO : ", log.LstdFlags)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	reg := inmemreg.NewRegistry()
	svc := user.NewService(reg, logger)

	admin, err := svc.CreateAdmin(user.NewAdmin{
		NewUser:     user.NewUser{ID: 1, Name: "Akmal Karimov", Email: "akmal@mail.com", Password: "s0-s3cret!"},
		Permissions: []string{"roster:manage"},
	})
	checkErr(logger, err)
	teacher, err := svc.CreateTeacher(user.NewTeacher{
		NewUser:  user.NewUser{ID: 2, Name: "Olim Rustamov", Email: "olim@mail.com", Password: "ch4lkdust!"},
		Subjects: []string{"Algebra", "Physics"},
		Classes:  []string{"9-A"},
	})
	checkErr(logger, err)
	student, err := svc.CreateStudent(user.NewStudent{
		NewUser: user.NewUser{ID: 3, Name: "Aziz Usmonov", Email: "aziz@mail.com", Password: "h0mew0rk!"},
		Grade:   "9-A",
	})
	checkErr(logger, err)

	checkErr(logger, svc.Register(admin, teacher))
	checkErr(logger, svc.Register(admin, student))

	deadline := time.Now().AddDate(0, 0, 7)

	algebra, err := teacher.CreateAssignment(assignment.NewAssignment{
		Title:       "Algebra homework",
		Description: "Solve the problem set",
		Deadline:    deadline,
		Subject:     "Algebra",
		ClassID:     "9-A",
	})
	checkErr(logger, err)
	svc.SubmitAssignment(student, algebra, "Answer: x = 5")
	_, err = svc.GradeAssignment(teacher, algebra, student, 4, 1)
	checkErr(logger, err)

	physics, err := teacher.CreateAssignment(assignment.NewAssignment{
		Title:       "Physics homework",
		Description: "Special relativity essay",
		Deadline:    deadline.AddDate(0, 0, 1),
		Subject:     "Physics",
		ClassID:     "9-A",
	})
	checkErr(logger, err)
	svc.SubmitAssignment(student, physics, "Answer: E = mc^2")
	_, err = svc.GradeAssignment(teacher, physics, student, 5, 2)
	checkErr(logger, err)

	fmt.Printf("progress report: %v\n", teacher.StudentProgress(student.ID))
	fmt.Printf("student grades: %v\n", student.ViewGrades())
	fmt.Printf("average grade: %.2f\n", student.AverageGrade())
	fmt.Printf("assignment status: %+v\n", algebra.Status())
	fmt.Println(svc.Report(admin))

	_, _ = svc.Notify(teacher, "Your physics homework has been graded!", student.ID)
	for _, n := range student.ViewNotifications(false) {
		fmt.Printf("message %d from user %d: %s\n", n.ID, n.SenderID, n.Message)
	}

	sched := schedule.New(1, "9-A", time.Monday)
	sched.AddLesson("08:30", "Algebra", teacher.ID)
	sched.AddLesson("09:30", "Physics", teacher.ID)
	fmt.Printf("schedule %d for class %s on %s: %v\n", sched.ID, sched.ClassID, sched.Day, sched.Lessons())
}

func checkErr(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(fmt.Sprintf("demo failed: %v", err), err)
	}
}
