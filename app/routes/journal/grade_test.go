package journal

import (
	"database/sql"
	"database/sql/driver"
	"strings"
	"testing"

	"github.com/SerhiiHodis/EduTrack/app/models"
)

type execCall struct {
	query string
	args  []interface{}
}

// recordingDB captures Exec calls so grade writes can be checked without a
// database. writeGrade never reads, so Query and QueryRow stay unimplemented.
type recordingDB struct {
	calls []execCall
}

func (r *recordingDB) Exec(query string, args ...interface{}) (sql.Result, error) {
	r.calls = append(r.calls, execCall{query: query, args: args})
	return driver.RowsAffected(1), nil
}

func (r *recordingDB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	panic("unexpected Query")
}

func (r *recordingDB) QueryRow(query string, args ...interface{}) *sql.Row {
	panic("unexpected QueryRow")
}

func parseOrFatal(t *testing.T, raw string) *GradeValue {
	t.Helper()
	v, err := ParseGradeValue(raw, testReasons, models.MaxPoints)
	if err != nil {
		t.Fatalf("ParseGradeValue(%q): %v", raw, err)
	}
	return v
}

func TestWriteGradeScoreThenAbsence(t *testing.T) {
	db := &recordingDB{}

	// A score writes points and no absence.
	if err := writeGrade(db, "l1", "s1", parseOrFatal(t, "87"), nil); err != nil {
		t.Fatal(err)
	}
	// Recording an absence over it writes the absence and nil points; both
	// columns come from the same row, so the upsert drops the old score.
	if err := writeGrade(db, "l1", "s1", parseOrFatal(t, "N"), nil); err != nil {
		t.Fatal(err)
	}

	if len(db.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(db.calls))
	}

	score := db.calls[0]
	if pts, ok := score.args[2].(*float64); !ok || pts == nil || *pts != 87 {
		t.Errorf("score write points = %v, want 87", score.args[2])
	}
	if absence, ok := score.args[3].(*string); !ok || absence != nil {
		t.Errorf("score write absence = %v, want nil", score.args[3])
	}

	abs := db.calls[1]
	if pts, ok := abs.args[2].(*float64); !ok || pts != nil {
		t.Errorf("absence write points = %v, want nil", abs.args[2])
	}
	if absence, ok := abs.args[3].(*string); !ok || absence == nil || *absence != "r1" {
		t.Errorf("absence write absence = %v, want r1", abs.args[3])
	}

	// Both writes go through the same upsert, where score and absence columns
	// are replaced together. A cell can never keep a stale value of the other
	// kind.
	for _, call := range db.calls {
		if !strings.Contains(call.query, "earned_points = EXCLUDED.earned_points") ||
			!strings.Contains(call.query, "absence_id = EXCLUDED.absence_id") {
			t.Errorf("upsert does not replace both value columns:\n%s", call.query)
		}
	}
}

func TestWriteGradeAbsenceThenScore(t *testing.T) {
	db := &recordingDB{}

	if err := writeGrade(db, "l1", "s1", parseOrFatal(t, "S"), nil); err != nil {
		t.Fatal(err)
	}
	if err := writeGrade(db, "l1", "s1", parseOrFatal(t, "72.5"), nil); err != nil {
		t.Fatal(err)
	}

	score := db.calls[1]
	if pts, ok := score.args[2].(*float64); !ok || pts == nil || *pts != 72.5 {
		t.Errorf("score write points = %v, want 72.5", score.args[2])
	}
	if absence, ok := score.args[3].(*string); !ok || absence != nil {
		t.Errorf("score write absence = %v, want nil", score.args[3])
	}
}

func TestWriteGradeClearDeletes(t *testing.T) {
	db := &recordingDB{}

	if err := writeGrade(db, "l1", "s1", parseOrFatal(t, ""), nil); err != nil {
		t.Fatal(err)
	}

	if len(db.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(db.calls))
	}
	call := db.calls[0]
	if !strings.HasPrefix(strings.TrimSpace(call.query), "DELETE") {
		t.Errorf("clear must delete the record, got:\n%s", call.query)
	}
	if call.args[0] != "l1" || call.args[1] != "s1" {
		t.Errorf("delete keyed on %v, want (l1, s1)", call.args)
	}
}
