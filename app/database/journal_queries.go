package database

import (
	"fmt"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/models"
	"github.com/lib/pq"
)

func GetPerformance(q DBTX, lessonID, studentID string) (*models.PerformanceRecord, error) {
	p := &models.PerformanceRecord{}
	query := `SELECT p.id, p.lesson_id, p.student_id, p.earned_points, p.absence_id, p.comment, p.updated_at,
					 ar.code, ar.is_respectful
			  FROM student_performance p
			  LEFT JOIN absence_reasons ar ON p.absence_id = ar.id
			  WHERE p.lesson_id = $1 AND p.student_id = $2`

	err := q.QueryRow(query, lessonID, studentID).Scan(
		&p.ID, &p.LessonID, &p.StudentID, &p.EarnedPoints, &p.AbsenceID, &p.Comment, &p.UpdatedAt,
		&p.AbsenceCode, &p.AbsenceIsRespectful,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpsertPerformance writes the single per-(lesson, student) record. A nil
// comment keeps the existing one.
func UpsertPerformance(q DBTX, lessonID, studentID string, points *float64, absenceID *string, comment *string) error {
	query := `INSERT INTO student_performance (lesson_id, student_id, earned_points, absence_id, comment)
			  VALUES ($1, $2, $3, $4, COALESCE($5, ''))
			  ON CONFLICT (lesson_id, student_id) DO UPDATE SET
				earned_points = EXCLUDED.earned_points,
				absence_id = EXCLUDED.absence_id,
				comment = COALESCE($5, student_performance.comment),
				updated_at = NOW()`
	_, err := q.Exec(query, lessonID, studentID, points, absenceID, comment)
	return err
}

func DeletePerformance(q DBTX, lessonID, studentID string) error {
	_, err := q.Exec(`DELETE FROM student_performance WHERE lesson_id = $1 AND student_id = $2`,
		lessonID, studentID)
	return err
}

// ListPerformanceForLessons loads every record of the given lessons in one
// query for journal assembly.
func ListPerformanceForLessons(q DBTX, lessonIDs []string) ([]*models.PerformanceRecord, error) {
	if len(lessonIDs) == 0 {
		return nil, nil
	}

	query := `SELECT p.id, p.lesson_id, p.student_id, p.earned_points, p.absence_id, p.comment, p.updated_at,
					 ar.code, ar.is_respectful
			  FROM student_performance p
			  LEFT JOIN absence_reasons ar ON p.absence_id = ar.id
			  WHERE p.lesson_id = ANY($1)`

	rows, err := q.Query(query, pq.Array(lessonIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.PerformanceRecord
	for rows.Next() {
		p := &models.PerformanceRecord{}
		if err := rows.Scan(&p.ID, &p.LessonID, &p.StudentID, &p.EarnedPoints, &p.AbsenceID,
			&p.Comment, &p.UpdatedAt, &p.AbsenceCode, &p.AbsenceIsRespectful); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// ListScoredPoints returns a student's scored values for one subject within
// optional date bounds, ordered by lesson date.
func ListScoredPoints(q DBTX, studentID, subjectID string, from, to *time.Time) ([]float64, error) {
	query := `SELECT p.earned_points
			  FROM student_performance p
			  JOIN lessons l ON p.lesson_id = l.id
			  WHERE p.student_id = $1 AND l.subject_id = $2 AND p.earned_points IS NOT NULL`
	args := []interface{}{studentID, subjectID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND l.date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND l.date <= $%d", len(args))
	}
	query += " ORDER BY l.date, l.start_time"

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []float64
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// RatingFilters bound the scored records entering the cohort rating.
type RatingFilters struct {
	GroupID   string
	SubjectID string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// ListScoredRecords returns every scored record in scope joined with its
// evaluation-category weight; lessons without a category count with weight 0.
func ListScoredRecords(q DBTX, f RatingFilters) ([]*models.ScoredRecord, error) {
	query := `SELECT p.student_id, u.full_name, COALESCE(g.name, '-'),
					 p.earned_points, COALESCE(ec.weight_percent, 0)
			  FROM student_performance p
			  JOIN lessons l ON p.lesson_id = l.id
			  JOIN users u ON p.student_id = u.id
			  LEFT JOIN study_groups g ON u.group_id = g.id
			  LEFT JOIN evaluation_categories ec ON l.evaluation_category_id = ec.id
			  WHERE p.earned_points IS NOT NULL AND u.is_active = true`
	var args []interface{}

	if f.GroupID != "" {
		args = append(args, f.GroupID)
		query += fmt.Sprintf(" AND l.group_id = $%d", len(args))
	}
	if f.SubjectID != "" {
		args = append(args, f.SubjectID)
		query += fmt.Sprintf(" AND l.subject_id = $%d", len(args))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		query += fmt.Sprintf(" AND l.date >= $%d", len(args))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		query += fmt.Sprintf(" AND l.date <= $%d", len(args))
	}
	query += " ORDER BY u.full_name, l.date"

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.ScoredRecord
	for rows.Next() {
		r := &models.ScoredRecord{}
		if err := rows.Scan(&r.StudentID, &r.StudentName, &r.GroupName, &r.Points, &r.WeightPercent); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetAbsenceStats summarizes a student's absences, optionally filtered by
// subject and date bounds.
func GetAbsenceStats(q DBTX, studentID string, subjectID string, from, to *time.Time) (*models.AbsenceStats, error) {
	query := `SELECT ar.code, ar.is_respectful
			  FROM student_performance p
			  JOIN lessons l ON p.lesson_id = l.id
			  JOIN absence_reasons ar ON p.absence_id = ar.id
			  WHERE p.student_id = $1 AND p.absence_id IS NOT NULL`
	args := []interface{}{studentID}

	if subjectID != "" {
		args = append(args, subjectID)
		query += fmt.Sprintf(" AND l.subject_id = $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND l.date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND l.date <= $%d", len(args))
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &models.AbsenceStats{ByCode: make(map[string]int)}
	for rows.Next() {
		var code string
		var respectful bool
		if err := rows.Scan(&code, &respectful); err != nil {
			return nil, err
		}
		stats.Total++
		if respectful {
			stats.Respectful++
		} else {
			stats.Unrespectful++
		}
		stats.ByCode[code]++
	}
	return stats, rows.Err()
}

// ListWeeklyAbsences counts absences per student within a week, students with
// none excluded, ordered by total descending.
func ListWeeklyAbsences(q DBTX, groupID, subjectID string, weekStart, weekEnd time.Time) ([]*models.AbsenceCount, error) {
	query := `SELECT p.student_id, u.full_name, COALESCE(g.name, '-'),
					 COUNT(*) AS total,
					 COUNT(*) FILTER (WHERE ar.is_respectful = false) AS unexcused
			  FROM student_performance p
			  JOIN lessons l ON p.lesson_id = l.id
			  JOIN users u ON p.student_id = u.id
			  LEFT JOIN study_groups g ON u.group_id = g.id
			  JOIN absence_reasons ar ON p.absence_id = ar.id
			  WHERE p.absence_id IS NOT NULL AND l.date BETWEEN $1 AND $2`
	args := []interface{}{weekStart, weekEnd}

	if groupID != "" {
		args = append(args, groupID)
		query += fmt.Sprintf(" AND l.group_id = $%d", len(args))
	}
	if subjectID != "" {
		args = append(args, subjectID)
		query += fmt.Sprintf(" AND l.subject_id = $%d", len(args))
	}
	query += " GROUP BY p.student_id, u.full_name, g.name ORDER BY total DESC"

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*models.AbsenceCount
	for rows.Next() {
		c := &models.AbsenceCount{}
		if err := rows.Scan(&c.StudentID, &c.StudentName, &c.GroupName, &c.Total, &c.Unexcused); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func InsertAccessLog(q DBTX, studentID string, action models.AccessAction) error {
	_, err := q.Exec(`INSERT INTO building_access_logs (student_id, action) VALUES ($1, $2)`, studentID, action)
	return err
}

// ListAccessLogsForDay returns the given students' turnstile events for one
// calendar day in chronological order.
func ListAccessLogsForDay(q DBTX, studentIDs []string, day time.Time) ([]*models.AccessLog, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	query := `SELECT id, student_id, ts, action
			  FROM building_access_logs
			  WHERE student_id = ANY($1) AND ts::date = $2::date
			  ORDER BY student_id, ts`

	rows, err := q.Query(query, pq.Array(studentIDs), day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.AccessLog
	for rows.Next() {
		l := &models.AccessLog{}
		if err := rows.Scan(&l.ID, &l.StudentID, &l.Timestamp, &l.Action); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
