package database

import (
	"github.com/SerhiiHodis/EduTrack/app/models"
)

func ListGroups(q DBTX) ([]*models.StudyGroup, error) {
	rows, err := q.Query(`SELECT id, name FROM study_groups ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.StudyGroup
	for rows.Next() {
		g := &models.StudyGroup{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func GetGroupByID(q DBTX, groupID string) (*models.StudyGroup, error) {
	g := &models.StudyGroup{}
	err := q.QueryRow(`SELECT id, name FROM study_groups WHERE id = $1`, groupID).Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func CreateGroup(q DBTX, name string) (*models.StudyGroup, error) {
	g := &models.StudyGroup{}
	err := q.QueryRow(`INSERT INTO study_groups (name) VALUES ($1) RETURNING id, name`, name).Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func DeleteGroup(q DBTX, groupID string) error {
	_, err := q.Exec(`DELETE FROM study_groups WHERE id = $1`, groupID)
	return err
}

func ListSubjects(q DBTX) ([]*models.Subject, error) {
	rows, err := q.Query(`SELECT id, name, description FROM subjects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(q DBTX, subjectID string) (*models.Subject, error) {
	s := &models.Subject{}
	err := q.QueryRow(`SELECT id, name, description FROM subjects WHERE id = $1`, subjectID).
		Scan(&s.ID, &s.Name, &s.Description)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateSubject(q DBTX, name, description string) (*models.Subject, error) {
	s := &models.Subject{}
	err := q.QueryRow(`INSERT INTO subjects (name, description) VALUES ($1, $2) RETURNING id, name, description`,
		name, description).Scan(&s.ID, &s.Name, &s.Description)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func DeleteSubject(q DBTX, subjectID string) error {
	_, err := q.Exec(`DELETE FROM subjects WHERE id = $1`, subjectID)
	return err
}

func ListClassrooms(q DBTX) ([]*models.Classroom, error) {
	rows, err := q.Query(`SELECT id, name, building, capacity FROM classrooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []*models.Classroom
	for rows.Next() {
		c := &models.Classroom{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Building, &c.Capacity); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}

func CreateClassroom(q DBTX, name, building string, capacity *int) (*models.Classroom, error) {
	c := &models.Classroom{}
	err := q.QueryRow(`INSERT INTO classrooms (name, building, capacity) VALUES ($1, $2, $3)
					   RETURNING id, name, building, capacity`,
		name, building, capacity).Scan(&c.ID, &c.Name, &c.Building, &c.Capacity)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func DeleteClassroom(q DBTX, classroomID string) error {
	_, err := q.Exec(`DELETE FROM classrooms WHERE id = $1`, classroomID)
	return err
}

// ListTimeSlots returns the canonical bell table ordered by start time.
func ListTimeSlots(q DBTX) ([]*models.TimeSlot, error) {
	query := `SELECT id, period, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
			  FROM time_slots ORDER BY start_time`

	rows, err := q.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*models.TimeSlot
	for rows.Next() {
		s := &models.TimeSlot{}
		if err := rows.Scan(&s.ID, &s.Period, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func GetTimeSlotByPeriod(q DBTX, period int) (*models.TimeSlot, error) {
	s := &models.TimeSlot{}
	query := `SELECT id, period, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
			  FROM time_slots WHERE period = $1`
	err := q.QueryRow(query, period).Scan(&s.ID, &s.Period, &s.StartTime, &s.EndTime)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MaxPeriod returns the highest period number in the bell table, or 0 when
// the table is empty.
func MaxPeriod(q DBTX) (int, error) {
	var max int
	err := q.QueryRow(`SELECT COALESCE(MAX(period), 0) FROM time_slots`).Scan(&max)
	return max, err
}

func UpsertTimeSlot(q DBTX, period int, startTime, endTime string) error {
	query := `INSERT INTO time_slots (period, start_time, end_time)
			  VALUES ($1, $2::time, $3::time)
			  ON CONFLICT (period) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time`
	_, err := q.Exec(query, period, startTime, endTime)
	return err
}

func ListAbsenceReasons(q DBTX) ([]*models.AbsenceReason, error) {
	rows, err := q.Query(`SELECT id, code, description, is_respectful FROM absence_reasons ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reasons []*models.AbsenceReason
	for rows.Next() {
		r := &models.AbsenceReason{}
		if err := rows.Scan(&r.ID, &r.Code, &r.Description, &r.IsRespectful); err != nil {
			return nil, err
		}
		reasons = append(reasons, r)
	}
	return reasons, rows.Err()
}

func CreateAbsenceReason(q DBTX, code, description string, isRespectful bool) (*models.AbsenceReason, error) {
	r := &models.AbsenceReason{}
	err := q.QueryRow(`INSERT INTO absence_reasons (code, description, is_respectful) VALUES ($1, $2, $3)
					   RETURNING id, code, description, is_respectful`,
		code, description, isRespectful).Scan(&r.ID, &r.Code, &r.Description, &r.IsRespectful)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func ListScales(q DBTX) ([]*models.GradingScale, error) {
	rows, err := q.Query(`SELECT id, name FROM grading_scales ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scales []*models.GradingScale
	for rows.Next() {
		s := &models.GradingScale{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		scales = append(scales, s)
	}
	return scales, rows.Err()
}

// GetScaleWithThresholds loads a scale and its rules in descending min_points
// order, the order the converter iterates them in.
func GetScaleWithThresholds(q DBTX, scaleID string) (*models.GradingScale, error) {
	s := &models.GradingScale{}
	err := q.QueryRow(`SELECT id, name FROM grading_scales WHERE id = $1`, scaleID).Scan(&s.ID, &s.Name)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(`SELECT id, scale_id, label, min_points FROM grade_thresholds
						  WHERE scale_id = $1 ORDER BY min_points DESC`, scaleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		t := &models.GradeThreshold{}
		if err := rows.Scan(&t.ID, &t.ScaleID, &t.Label, &t.MinPoints); err != nil {
			return nil, err
		}
		s.Thresholds = append(s.Thresholds, t)
	}
	return s, rows.Err()
}

func CreateScale(q DBTX, name string) (*models.GradingScale, error) {
	s := &models.GradingScale{}
	err := q.QueryRow(`INSERT INTO grading_scales (name) VALUES ($1) RETURNING id, name`, name).Scan(&s.ID, &s.Name)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateThreshold(q DBTX, scaleID, label string, minPoints float64) (*models.GradeThreshold, error) {
	t := &models.GradeThreshold{}
	err := q.QueryRow(`INSERT INTO grade_thresholds (scale_id, label, min_points) VALUES ($1, $2, $3)
					   RETURNING id, scale_id, label, min_points`,
		scaleID, label, minPoints).Scan(&t.ID, &t.ScaleID, &t.Label, &t.MinPoints)
	if err != nil {
		return nil, err
	}
	return t, nil
}
