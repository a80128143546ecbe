package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/SerhiiHodis/EduTrack/app/database"
	"github.com/SerhiiHodis/EduTrack/app/routes/schedule"

	"github.com/robfig/cron/v3"
)

// MaterializeHorizonDays is how far ahead the nightly sweep keeps the lesson
// calendar filled.
const MaterializeHorizonDays = 14

// StartScheduler launches the nightly materialization sweep. Every night the
// whole template set is expanded over the coming two weeks, so the calendar
// stays filled without anyone triggering it by hand.
func StartScheduler(db *sql.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("30 2 * * *", func() {
		if err := MaterializeUpcoming(db); err != nil {
			log.Printf("scheduler: materialization sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("scheduler: failed to register sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}

// MaterializeUpcoming expands all templates from today through the horizon in
// one transaction.
func MaterializeUpcoming(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	templates, err := database.ListAllTemplates(tx)
	if err != nil {
		return err
	}

	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, MaterializeHorizonDays)

	created, err := schedule.MaterializeRange(tx, templates, from, to)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("Materialization sweep: %d lessons created through %s", created, to.Format("2006-01-02"))
	return nil
}
