package models

// Role defines the possible roles for a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// AccessAction defines the turnstile event types in the building access log.
type AccessAction string

const (
	AccessEnter AccessAction = "ENTER"
	AccessExit  AccessAction = "EXIT"
)

// ISO weekday numbers (1 = Monday .. 7 = Sunday), as used by schedule templates.
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// MaxPoints is the upper bound of the scoring range.
const MaxPoints = 100

// DefaultLessonDuration is the standard lesson length in minutes.
const DefaultLessonDuration = 80
