package models

import "testing"

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:30", want: 510},
		{in: "23:59", want: 1439},
		{in: "8:30", want: 510},
		{in: "08:30:00", want: 510},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := MinuteOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("MinuteOfDay(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("MinuteOfDay(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MinuteOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		in   string
		d    int
		want string
	}{
		{"08:30", 90, "10:00"},
		{"23:30", 45, "00:15"},
		{"10:00", 0, "10:00"},
	}

	for _, tt := range tests {
		got, err := AddMinutes(tt.in, tt.d)
		if err != nil {
			t.Errorf("AddMinutes(%q, %d): %v", tt.in, tt.d, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddMinutes(%q, %d) = %q, want %q", tt.in, tt.d, got, tt.want)
		}
	}
}

func TestPeriodForStart(t *testing.T) {
	slots := []*TimeSlot{
		{Period: 1, StartTime: "08:30", EndTime: "10:00"},
		{Period: 2, StartTime: "10:00", EndTime: "11:30"},
	}

	if got := PeriodForStart(slots, "10:00"); got != 2 {
		t.Errorf("PeriodForStart(10:00) = %d, want 2", got)
	}
	if got := PeriodForStart(slots, "10:05"); got != 0 {
		t.Errorf("PeriodForStart(10:05) = %d, want 0 sentinel", got)
	}
	if got := PeriodForStart(nil, "08:30"); got != 0 {
		t.Errorf("PeriodForStart with no slots = %d, want 0", got)
	}
}
