package database

import (
	"database/sql"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

func GetUserByEmail(q DBTX, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, full_name, role, group_id, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := q.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName,
		&user.Role, &user.GroupID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(q DBTX, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, full_name, role, group_id, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := q.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName,
		&user.Role, &user.GroupID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(q DBTX, email, hashedPassword, fullName string, role models.Role, groupID *string) (*models.User, error) {
	user := &models.User{}
	query := `INSERT INTO users (email, password, full_name, role, group_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, email, password, full_name, role, group_id, is_active, created_at, updated_at`

	err := q.QueryRow(query, email, hashedPassword, fullName, role, groupID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName,
		&user.Role, &user.GroupID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetStudentsByGroup(q DBTX, groupID string) ([]*models.User, error) {
	query := `SELECT id, email, full_name, role, group_id, is_active, created_at, updated_at
			  FROM users
			  WHERE role = 'student' AND group_id = $1 AND is_active = true
			  ORDER BY full_name`

	rows, err := q.Query(query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.FullName, &user.Role,
			&user.GroupID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, user)
	}
	return students, rows.Err()
}

func ListUsersByRole(q DBTX, role models.Role) ([]*models.User, error) {
	query := `SELECT u.id, u.email, u.full_name, u.role, u.group_id, COALESCE(g.name, ''),
					 u.is_active, u.created_at, u.updated_at
			  FROM users u
			  LEFT JOIN study_groups g ON u.group_id = g.id
			  WHERE u.role = $1 AND u.is_active = true
			  ORDER BY u.full_name`

	rows, err := q.Query(query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.FullName, &user.Role,
			&user.GroupID, &user.GroupName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func DeactivateUser(q DBTX, userID string) error {
	query := `UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := q.Exec(query, userID)
	return err
}

func CreateSession(q DBTX, sessionID string, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := q.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func GetSessionByID(q DBTX, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := q.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(q DBTX, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := q.Exec(query, sessionID)
	return err
}

// NotFound reports whether err means the row did not exist.
func NotFound(err error) bool {
	return err == sql.ErrNoRows
}
