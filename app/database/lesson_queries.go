package database

import (
	"database/sql"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

const lessonSelect = `
	SELECT l.id, l.group_id, l.subject_id, l.teacher_id, l.date,
		   to_char(l.start_time, 'HH24:MI'), to_char(l.end_time, 'HH24:MI'),
		   l.topic, l.classroom_id, l.max_points, l.evaluation_category_id, l.template_id,
		   s.name, u.full_name, COALESCE(ec.name, ''), COALESCE(ec.weight_percent, 0)
	FROM lessons l
	JOIN subjects s ON l.subject_id = s.id
	JOIN users u ON l.teacher_id = u.id
	LEFT JOIN evaluation_categories ec ON l.evaluation_category_id = ec.id`

func scanLesson(row interface {
	Scan(dest ...interface{}) error
}) (*models.Lesson, error) {
	l := &models.Lesson{}
	err := row.Scan(&l.ID, &l.GroupID, &l.SubjectID, &l.TeacherID, &l.Date,
		&l.StartTime, &l.EndTime, &l.Topic, &l.ClassroomID, &l.MaxPoints,
		&l.EvaluationCategoryID, &l.TemplateID,
		&l.SubjectName, &l.TeacherName, &l.CategoryName, &l.CategoryWeight)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func collectLessons(rows *sql.Rows) ([]*models.Lesson, error) {
	defer rows.Close()
	var lessons []*models.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func GetLessonByID(q DBTX, lessonID string) (*models.Lesson, error) {
	return scanLesson(q.QueryRow(lessonSelect+` WHERE l.id = $1`, lessonID))
}

// GetLessonAt looks a lesson up by its unique (group, date, start_time) key.
func GetLessonAt(q DBTX, groupID string, date time.Time, startTime string) (*models.Lesson, error) {
	return scanLesson(q.QueryRow(
		lessonSelect+` WHERE l.group_id = $1 AND l.date = $2 AND l.start_time = $3::time`,
		groupID, date, startTime))
}

func CreateLesson(q DBTX, l *models.Lesson) (string, error) {
	var id string
	err := q.QueryRow(`INSERT INTO lessons
						(group_id, subject_id, teacher_id, date, start_time, end_time,
						 topic, classroom_id, max_points, evaluation_category_id, template_id)
					   VALUES ($1, $2, $3, $4, $5::time, $6::time, $7, $8, $9, $10, $11)
					   RETURNING id`,
		l.GroupID, l.SubjectID, l.TeacherID, l.Date, l.StartTime, l.EndTime,
		l.Topic, l.ClassroomID, l.MaxPoints, l.EvaluationCategoryID, l.TemplateID).Scan(&id)
	return id, err
}

// RealignLesson overwrites a lesson's subject, teacher and evaluation category
// to match its template after the template changed. Performance records are
// left untouched; they belong to the lesson identity, not the subject label.
func RealignLesson(q DBTX, lessonID, subjectID, teacherID string, categoryID *string, templateID *string) error {
	_, err := q.Exec(`UPDATE lessons
					  SET subject_id = $2, teacher_id = $3, evaluation_category_id = $4, template_id = $5
					  WHERE id = $1`,
		lessonID, subjectID, teacherID, categoryID, templateID)
	return err
}

func UpdateLessonDetails(q DBTX, lessonID, topic string, maxPoints int, categoryID *string) error {
	_, err := q.Exec(`UPDATE lessons SET topic = $2, max_points = $3, evaluation_category_id = $4 WHERE id = $1`,
		lessonID, topic, maxPoints, categoryID)
	return err
}

// ListLessonsForWeek returns a group's lessons for one subject within
// [weekStart, weekEnd], ordered for journal headers.
func ListLessonsForWeek(q DBTX, groupID, subjectID string, weekStart, weekEnd time.Time) ([]*models.Lesson, error) {
	rows, err := q.Query(lessonSelect+`
		WHERE l.group_id = $1 AND l.subject_id = $2 AND l.date BETWEEN $3 AND $4
		ORDER BY l.date, l.start_time`,
		groupID, subjectID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	return collectLessons(rows)
}

// ListLessonsByGroupRange returns all of a group's lessons in a date range,
// ordered by date and start time.
func ListLessonsByGroupRange(q DBTX, groupID string, from, to time.Time) ([]*models.Lesson, error) {
	rows, err := q.Query(lessonSelect+`
		WHERE l.group_id = $1 AND l.date BETWEEN $2 AND $3
		ORDER BY l.date, l.start_time`,
		groupID, from, to)
	if err != nil {
		return nil, err
	}
	return collectLessons(rows)
}
