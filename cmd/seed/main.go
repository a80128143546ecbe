package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/config"
	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/SerhiiHodis/EduTrack/app/routes/auth"
	"github.com/SerhiiHodis/EduTrack/app/routes/schedule"
)

var timeSlots = []struct {
	period     int
	start, end string
}{
	{1, "08:30", "10:00"},
	{2, "10:00", "11:30"},
	{3, "11:40", "13:10"},
	{4, "13:30", "15:00"},
	{5, "15:00", "16:30"},
	{6, "16:40", "18:10"},
	{7, "18:20", "19:50"},
	{8, "20:00", "21:30"},
}

var absenceReasons = []struct {
	code        string
	description string
	respectful  bool
}{
	{"N", "Unexcused absence", false},
	{"DL", "Official leave", true},
	{"PP", "Valid excuse", true},
	{"S", "Sickness", true},
	{"V", "Away at competition", true},
}

var scaleRules = []struct {
	label     string
	minPoints float64
}{
	{"A", 90}, {"B", 82}, {"C", 74}, {"D", 64}, {"E", 60}, {"F", 0},
}

var subjectNames = []string{
	"Advanced Mathematics", "Object-Oriented Programming", "Philosophy",
	"Foreign Language", "Physics", "Databases", "Computer Networks",
	"Web Development", "Algorithms and Data Structures", "Discrete Mathematics",
	"Operating Systems", "Computer Architecture", "Cybersecurity",
	"Artificial Intelligence", "Project Management", "Probability Theory",
}

var groupNames = []string{"KN-41", "KN-42", "IPZ-11", "IPZ-12", "CS-51"}

var teacherNames = []string{
	"Olena Kovalenko", "Ivan Shevchenko", "Petro Boiko", "Maria Tkachenko",
	"Andrii Kravchenko", "Svitlana Oliinyk", "Dmytro Vovk", "Nataliia Bondar",
	"Yurii Melnyk", "Oksana Polishchuk",
}

var studentFirstNames = []string{
	"Oleksandr", "Maksym", "Artem", "Dmytro", "Denys", "Andrii", "Bohdan",
	"Daria", "Maria", "Sofia", "Anna", "Viktoria", "Anastasia", "Mykola",
	"Ihor", "Vasyl", "Pavlo", "Oleh", "Eduard", "Roman",
}

var studentLastNames = []string{
	"Kovalenko", "Shevchenko", "Boiko", "Tkachenko", "Kravchenko",
	"Oliinyk", "Vovk", "Bondar", "Melnyk", "Polishchuk",
}

func main() {
	config.InitDB()
	defer config.GetDB().Close()

	db := config.GetDB()
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := seed(db); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	log.Println("Seeding complete")
}

func seed(db *sql.DB) error {
	password, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	for _, slot := range timeSlots {
		if err := database.UpsertTimeSlot(db, slot.period, slot.start, slot.end); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d time slots", len(timeSlots))

	var reasons []*models.AbsenceReason
	for _, r := range absenceReasons {
		reason, err := database.CreateAbsenceReason(db, r.code, r.description, r.respectful)
		if err != nil {
			if database.IsUniqueViolation(err) {
				continue
			}
			return err
		}
		reasons = append(reasons, reason)
	}
	log.Printf("Seeded %d absence reasons", len(reasons))

	scale, err := database.CreateScale(db, "100-point")
	if err != nil && !database.IsUniqueViolation(err) {
		return err
	}
	if scale != nil {
		for _, rule := range scaleRules {
			if _, err := database.CreateThreshold(db, scale.ID, rule.label, rule.minPoints); err != nil {
				return err
			}
		}
		log.Println("Seeded grading scale")
	}

	if _, err := database.CreateUser(db, "admin@edutrack.local", password, "Administrator", models.RoleAdmin, nil); err != nil {
		if !database.IsUniqueViolation(err) {
			return err
		}
	}

	var groups []*models.StudyGroup
	for _, name := range groupNames {
		g, err := database.CreateGroup(db, name)
		if err != nil {
			return err
		}
		groups = append(groups, g)
	}

	var classrooms []*models.Classroom
	for i := 1; i <= 5; i++ {
		capacity := 20 + rand.Intn(40)
		for _, name := range []string{fmt.Sprintf("10%d", i), fmt.Sprintf("20%d", i)} {
			room, err := database.CreateClassroom(db, name, "Main", &capacity)
			if err != nil {
				return err
			}
			classrooms = append(classrooms, room)
		}
	}

	var subjects []*models.Subject
	for _, name := range subjectNames {
		s, err := database.CreateSubject(db, name, "")
		if err != nil {
			return err
		}
		subjects = append(subjects, s)
	}

	var teachers []*models.User
	for i, name := range teacherNames {
		t, err := database.CreateUser(db, fmt.Sprintf("teacher%d@edutrack.local", i+1), password, name, models.RoleTeacher, nil)
		if err != nil {
			return err
		}
		teachers = append(teachers, t)
	}

	var students []*models.User
	for i := 0; i < 40; i++ {
		group := groups[i%len(groups)]
		name := studentFirstNames[rand.Intn(len(studentFirstNames))] + " " +
			studentLastNames[rand.Intn(len(studentLastNames))]
		s, err := database.CreateUser(db, fmt.Sprintf("student%d@edutrack.local", i+1), password, name, models.RoleStudent, &group.ID)
		if err != nil {
			return err
		}
		students = append(students, s)
	}
	log.Printf("Seeded %d teachers and %d students", len(teachers), len(students))

	// Each group studies eight subjects; each assignment gets the standard
	// three weighted categories.
	assignmentsByGroup := make(map[string][]*models.TeachingAssignment)
	for _, group := range groups {
		for _, idx := range rand.Perm(len(subjects))[:8] {
			teacher := teachers[rand.Intn(len(teachers))]
			a, err := database.GetOrCreateAssignment(db, subjects[idx].ID, teacher.ID, group.ID)
			if err != nil {
				return err
			}
			for _, cat := range []struct {
				name   string
				weight float64
			}{{"Lecture", 30}, {"Practice", 40}, {"Lab", 30}} {
				if _, err := database.CreateCategory(db, a.ID, cat.name, cat.weight); err != nil {
					return err
				}
			}
			assignmentsByGroup[group.ID] = append(assignmentsByGroup[group.ID], a)
		}
	}

	templates, err := seedTemplates(db, groups, classrooms, assignmentsByGroup)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d schedule templates", len(templates))

	from := time.Now().AddDate(0, 0, -45)
	to := time.Now().AddDate(0, 0, 14)
	created, err := schedule.MaterializeRange(db, templates, from, to)
	if err != nil {
		return err
	}
	log.Printf("Materialized %d lessons", created)

	return seedPerformance(db, groups, students, reasons)
}

// seedTemplates builds a random weekly grid per group: three to five lessons a
// day, Monday through Friday, consecutive periods, validated the same way the
// API validates.
func seedTemplates(db *sql.DB, groups []*models.StudyGroup, classrooms []*models.Classroom,
	assignmentsByGroup map[string][]*models.TeachingAssignment) ([]*models.ScheduleTemplate, error) {

	var templates []*models.ScheduleTemplate
	for _, group := range groups {
		assignments := assignmentsByGroup[group.ID]
		for day := models.Monday; day <= models.Friday; day++ {
			lessons := 3 + rand.Intn(3)
			for period := 1; period <= lessons && period <= len(timeSlots); period++ {
				a := assignments[rand.Intn(len(assignments))]
				slot := timeSlots[period-1]
				start, _ := models.MinuteOfDay(slot.start)
				end, _ := models.MinuteOfDay(slot.end)

				candidate := &models.ScheduleTemplate{
					AssignmentID:    a.ID,
					GroupID:         group.ID,
					DayOfWeek:       day,
					Period:          period,
					StartTime:       slot.start,
					DurationMinutes: end - start,
					ClassroomID:     &classrooms[rand.Intn(len(classrooms))].ID,
					SubjectID:       a.SubjectID,
					SubjectName:     a.SubjectName,
					TeacherID:       a.TeacherID,
					TeacherName:     a.TeacherName,
				}
				if err := schedule.ValidateSlot(db, candidate, ""); err != nil {
					// Random grid collisions are expected; skip them.
					continue
				}
				id, err := database.UpsertTemplate(db, candidate)
				if err != nil {
					return nil, err
				}
				candidate.ID = id
				templates = append(templates, candidate)
			}
		}
	}
	return templates, nil
}

// seedPerformance fills past lessons with a plausible mix of grades and
// absences.
func seedPerformance(db *sql.DB, groups []*models.StudyGroup, students []*models.User,
	reasons []*models.AbsenceReason) error {

	today := time.Now().Truncate(24 * time.Hour)
	graded := 0

	for _, group := range groups {
		lessons, err := database.ListLessonsByGroupRange(db, group.ID, today.AddDate(0, 0, -45), today.AddDate(0, 0, -1))
		if err != nil {
			return err
		}

		for _, lesson := range lessons {
			for _, student := range students {
				if student.GroupID == nil || *student.GroupID != group.ID {
					continue
				}
				switch roll := rand.Float64(); {
				case roll < 0.6:
					points := float64(55 + rand.Intn(46))
					if err := database.UpsertPerformance(db, lesson.ID, student.ID, &points, nil, nil); err != nil {
						return err
					}
					graded++
				case roll < 0.7 && len(reasons) > 0:
					reason := reasons[rand.Intn(len(reasons))]
					if err := database.UpsertPerformance(db, lesson.ID, student.ID, nil, &reason.ID, nil); err != nil {
						return err
					}
					graded++
				}
			}
		}
	}

	log.Printf("Seeded %d performance records", graded)
	return nil
}
