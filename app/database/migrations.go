package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Every uniqueness
// invariant of the domain is backed by a constraint here, independent of the
// application-level validation.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE EXTENSION IF NOT EXISTS btree_gist`,

		`CREATE TABLE IF NOT EXISTS study_groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS classrooms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			building VARCHAR(100) NOT NULL DEFAULT '',
			capacity INTEGER
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			role VARCHAR(10) NOT NULL DEFAULT 'student',
			group_id UUID REFERENCES study_groups(id) ON DELETE SET NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS time_slots (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			period SMALLINT UNIQUE NOT NULL,
			start_time TIME NOT NULL,
			end_time TIME NOT NULL,
			CHECK (start_time < end_time)
		)`,

		`CREATE TABLE IF NOT EXISTS teaching_assignments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			teacher_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			group_id UUID NOT NULL REFERENCES study_groups(id) ON DELETE CASCADE,
			UNIQUE (subject_id, teacher_id, group_id)
		)`,

		`CREATE TABLE IF NOT EXISTS evaluation_categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES teaching_assignments(id) ON DELETE CASCADE,
			name VARCHAR(50) NOT NULL,
			weight_percent DECIMAL(5,2) NOT NULL DEFAULT 0,
			CHECK (weight_percent >= 0 AND weight_percent <= 100)
		)`,

		`CREATE TABLE IF NOT EXISTS schedule_templates (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES teaching_assignments(id) ON DELETE CASCADE,
			group_id UUID NOT NULL REFERENCES study_groups(id) ON DELETE CASCADE,
			day_of_week SMALLINT NOT NULL CHECK (day_of_week BETWEEN 1 AND 7),
			period SMALLINT NOT NULL,
			start_time TIME NOT NULL,
			duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
			classroom_id UUID REFERENCES classrooms(id) ON DELETE SET NULL,
			valid_from DATE NOT NULL DEFAULT CURRENT_DATE,
			UNIQUE (group_id, day_of_week, period),
			EXCLUDE USING gist (
				classroom_id WITH =,
				day_of_week WITH =,
				int4range(
					(EXTRACT(HOUR FROM start_time) * 60 + EXTRACT(MINUTE FROM start_time))::int,
					(EXTRACT(HOUR FROM start_time) * 60 + EXTRACT(MINUTE FROM start_time))::int + duration_minutes
				) WITH &&
			)
		)`,

		`CREATE TABLE IF NOT EXISTS lessons (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			group_id UUID NOT NULL REFERENCES study_groups(id) ON DELETE CASCADE,
			subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			teacher_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			start_time TIME NOT NULL,
			end_time TIME NOT NULL,
			topic VARCHAR(255) NOT NULL DEFAULT '',
			classroom_id UUID REFERENCES classrooms(id) ON DELETE SET NULL,
			max_points INTEGER NOT NULL DEFAULT 100,
			evaluation_category_id UUID REFERENCES evaluation_categories(id),
			template_id UUID REFERENCES schedule_templates(id) ON DELETE SET NULL,
			UNIQUE (group_id, date, start_time)
		)`,

		`CREATE TABLE IF NOT EXISTS absence_reasons (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code VARCHAR(5) UNIQUE NOT NULL,
			description VARCHAR(100) NOT NULL DEFAULT '',
			is_respectful BOOLEAN NOT NULL DEFAULT false
		)`,

		`CREATE TABLE IF NOT EXISTS student_performance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lesson_id UUID NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			earned_points DECIMAL(5,2) CHECK (earned_points >= 0 AND earned_points <= 100),
			absence_id UUID REFERENCES absence_reasons(id) ON DELETE SET NULL,
			comment TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (lesson_id, student_id),
			CHECK (earned_points IS NULL OR absence_id IS NULL)
		)`,

		`CREATE TABLE IF NOT EXISTS grading_scales (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS grade_thresholds (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			scale_id UUID NOT NULL REFERENCES grading_scales(id) ON DELETE CASCADE,
			label VARCHAR(50) NOT NULL,
			min_points DECIMAL(5,2) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS building_access_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			ts TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			action VARCHAR(10) NOT NULL CHECK (action IN ('ENTER', 'EXIT'))
		)`,

		`CREATE INDEX IF NOT EXISTS idx_lessons_group_date ON lessons (group_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_performance_student ON student_performance (student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_access_logs_student_ts ON building_access_logs (student_id, ts)`,
		`CREATE INDEX IF NOT EXISTS idx_templates_day ON schedule_templates (day_of_week)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
