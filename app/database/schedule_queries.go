package database

import (
	"database/sql"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

const assignmentSelect = `
	SELECT a.id, a.subject_id, a.teacher_id, a.group_id,
		   s.name, u.full_name, g.name
	FROM teaching_assignments a
	JOIN subjects s ON a.subject_id = s.id
	JOIN users u ON a.teacher_id = u.id
	JOIN study_groups g ON a.group_id = g.id`

func scanAssignment(row interface {
	Scan(dest ...interface{}) error
}) (*models.TeachingAssignment, error) {
	a := &models.TeachingAssignment{}
	err := row.Scan(&a.ID, &a.SubjectID, &a.TeacherID, &a.GroupID,
		&a.SubjectName, &a.TeacherName, &a.GroupName)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func GetAssignmentByID(q DBTX, assignmentID string) (*models.TeachingAssignment, error) {
	return scanAssignment(q.QueryRow(assignmentSelect+` WHERE a.id = $1`, assignmentID))
}

func GetAssignment(q DBTX, subjectID, teacherID, groupID string) (*models.TeachingAssignment, error) {
	return scanAssignment(q.QueryRow(
		assignmentSelect+` WHERE a.subject_id = $1 AND a.teacher_id = $2 AND a.group_id = $3`,
		subjectID, teacherID, groupID))
}

// GetOrCreateAssignment resolves the (subject, teacher, group) triple, creating
// it when absent. The unique constraint absorbs concurrent creations.
func GetOrCreateAssignment(q DBTX, subjectID, teacherID, groupID string) (*models.TeachingAssignment, error) {
	a, err := GetAssignment(q, subjectID, teacherID, groupID)
	if err == nil {
		return a, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	var id string
	err = q.QueryRow(`INSERT INTO teaching_assignments (subject_id, teacher_id, group_id)
					  VALUES ($1, $2, $3)
					  ON CONFLICT (subject_id, teacher_id, group_id) DO UPDATE SET subject_id = EXCLUDED.subject_id
					  RETURNING id`,
		subjectID, teacherID, groupID).Scan(&id)
	if err != nil {
		return nil, err
	}
	return GetAssignmentByID(q, id)
}

func ListAssignmentsByTeacher(q DBTX, teacherID string) ([]*models.TeachingAssignment, error) {
	rows, err := q.Query(assignmentSelect+` WHERE a.teacher_id = $1 ORDER BY g.name, s.name`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.TeachingAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func ListAssignments(q DBTX) ([]*models.TeachingAssignment, error) {
	rows, err := q.Query(assignmentSelect + ` ORDER BY g.name, s.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.TeachingAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func DeleteAssignment(q DBTX, assignmentID string) error {
	_, err := q.Exec(`DELETE FROM teaching_assignments WHERE id = $1`, assignmentID)
	return err
}

func ListCategories(q DBTX, assignmentID string) ([]*models.EvaluationCategory, error) {
	rows, err := q.Query(`SELECT id, assignment_id, name, weight_percent
						  FROM evaluation_categories WHERE assignment_id = $1 ORDER BY id`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.EvaluationCategory
	for rows.Next() {
		c := &models.EvaluationCategory{}
		if err := rows.Scan(&c.ID, &c.AssignmentID, &c.Name, &c.WeightPercent); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// SumCategoryWeight returns the current weight total of an assignment's
// categories, optionally excluding one category (for updates).
func SumCategoryWeight(q DBTX, assignmentID string, excludeID string) (float64, error) {
	query := `SELECT COALESCE(SUM(weight_percent), 0) FROM evaluation_categories WHERE assignment_id = $1`
	args := []interface{}{assignmentID}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	var total float64
	err := q.QueryRow(query, args...).Scan(&total)
	return total, err
}

func CreateCategory(q DBTX, assignmentID, name string, weightPercent float64) (*models.EvaluationCategory, error) {
	c := &models.EvaluationCategory{}
	err := q.QueryRow(`INSERT INTO evaluation_categories (assignment_id, name, weight_percent)
					   VALUES ($1, $2, $3)
					   RETURNING id, assignment_id, name, weight_percent`,
		assignmentID, name, weightPercent).Scan(&c.ID, &c.AssignmentID, &c.Name, &c.WeightPercent)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func UpdateCategory(q DBTX, categoryID, name string, weightPercent float64) error {
	_, err := q.Exec(`UPDATE evaluation_categories SET name = $2, weight_percent = $3 WHERE id = $1`,
		categoryID, name, weightPercent)
	return err
}

func DeleteCategory(q DBTX, categoryID string) error {
	_, err := q.Exec(`DELETE FROM evaluation_categories WHERE id = $1`, categoryID)
	return err
}

// FirstCategoryForAssignment returns the assignment's first evaluation
// category, or sql.ErrNoRows when it has none.
func FirstCategoryForAssignment(q DBTX, assignmentID string) (*models.EvaluationCategory, error) {
	c := &models.EvaluationCategory{}
	err := q.QueryRow(`SELECT id, assignment_id, name, weight_percent
					   FROM evaluation_categories WHERE assignment_id = $1 ORDER BY id LIMIT 1`,
		assignmentID).Scan(&c.ID, &c.AssignmentID, &c.Name, &c.WeightPercent)
	if err != nil {
		return nil, err
	}
	return c, nil
}

const templateSelect = `
	SELECT t.id, t.assignment_id, t.group_id, t.day_of_week, t.period,
		   to_char(t.start_time, 'HH24:MI'), t.duration_minutes, t.classroom_id, t.valid_from,
		   a.subject_id, s.name, a.teacher_id, u.full_name, COALESCE(c.name, '')
	FROM schedule_templates t
	JOIN teaching_assignments a ON t.assignment_id = a.id
	JOIN subjects s ON a.subject_id = s.id
	JOIN users u ON a.teacher_id = u.id
	LEFT JOIN classrooms c ON t.classroom_id = c.id`

func scanTemplate(row interface {
	Scan(dest ...interface{}) error
}) (*models.ScheduleTemplate, error) {
	t := &models.ScheduleTemplate{}
	err := row.Scan(&t.ID, &t.AssignmentID, &t.GroupID, &t.DayOfWeek, &t.Period,
		&t.StartTime, &t.DurationMinutes, &t.ClassroomID, &t.ValidFrom,
		&t.SubjectID, &t.SubjectName, &t.TeacherID, &t.TeacherName, &t.ClassroomName)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func collectTemplates(rows *sql.Rows) ([]*models.ScheduleTemplate, error) {
	defer rows.Close()
	var templates []*models.ScheduleTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func ListTemplatesByGroup(q DBTX, groupID string) ([]*models.ScheduleTemplate, error) {
	rows, err := q.Query(templateSelect+` WHERE t.group_id = $1 ORDER BY t.day_of_week, t.period`, groupID)
	if err != nil {
		return nil, err
	}
	return collectTemplates(rows)
}

func ListAllTemplates(q DBTX) ([]*models.ScheduleTemplate, error) {
	rows, err := q.Query(templateSelect + ` ORDER BY t.group_id, t.day_of_week, t.period`)
	if err != nil {
		return nil, err
	}
	return collectTemplates(rows)
}

// ListTemplatesForDay returns every group's templates on one ISO weekday; the
// conflict validator scans these for classroom and teacher collisions.
func ListTemplatesForDay(q DBTX, dayOfWeek int) ([]*models.ScheduleTemplate, error) {
	rows, err := q.Query(templateSelect+` WHERE t.day_of_week = $1`, dayOfWeek)
	if err != nil {
		return nil, err
	}
	return collectTemplates(rows)
}

func GetTemplateAt(q DBTX, groupID string, dayOfWeek, period int) (*models.ScheduleTemplate, error) {
	return scanTemplate(q.QueryRow(
		templateSelect+` WHERE t.group_id = $1 AND t.day_of_week = $2 AND t.period = $3`,
		groupID, dayOfWeek, period))
}

// UpsertTemplate creates or replaces the template at (group, day, period).
func UpsertTemplate(q DBTX, tmpl *models.ScheduleTemplate) (string, error) {
	var id string
	err := q.QueryRow(`INSERT INTO schedule_templates
						(assignment_id, group_id, day_of_week, period, start_time, duration_minutes, classroom_id)
					   VALUES ($1, $2, $3, $4, $5::time, $6, $7)
					   ON CONFLICT (group_id, day_of_week, period) DO UPDATE SET
						assignment_id = EXCLUDED.assignment_id,
						start_time = EXCLUDED.start_time,
						duration_minutes = EXCLUDED.duration_minutes,
						classroom_id = EXCLUDED.classroom_id
					   RETURNING id`,
		tmpl.AssignmentID, tmpl.GroupID, tmpl.DayOfWeek, tmpl.Period,
		tmpl.StartTime, tmpl.DurationMinutes, tmpl.ClassroomID).Scan(&id)
	return id, err
}

func DeleteTemplateAt(q DBTX, groupID string, dayOfWeek, period int) error {
	_, err := q.Exec(`DELETE FROM schedule_templates WHERE group_id = $1 AND day_of_week = $2 AND period = $3`,
		groupID, dayOfWeek, period)
	return err
}

func DeleteTemplatesByGroup(q DBTX, groupID string) error {
	_, err := q.Exec(`DELETE FROM schedule_templates WHERE group_id = $1`, groupID)
	return err
}
