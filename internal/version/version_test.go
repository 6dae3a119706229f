package version

import (
	"strings"
	"testing"
)

func TestBuildNumber(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    int
		wantErr bool
	}{
		{name: "epoch day", date: "2026-03-01", want: 0},
		{name: "day after epoch", date: "2026-03-02", want: 1},
		{name: "one year out", date: "2027-03-01", want: 365},
		{name: "spans two leap days", date: "2032-03-01", want: 2192},
		{name: "empty", date: "", wantErr: true},
		{name: "garbage", date: "yesterday", wantErr: true},
		{name: "before the project", date: "2026-02-28", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := number(tt.date)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("number(%q) = %d, want an error", tt.date, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("number(%q): %v", tt.date, err)
			}
			if got != tt.want {
				t.Errorf("number(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestInfoCarriesErrorInstead(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = ""
	b := Info()
	if b.Error == "" {
		t.Error("Info() with no build date reported no error")
	}
	if b.Number != 0 {
		t.Errorf("Number = %d on a failed resolve, want 0", b.Number)
	}
}

func TestStringFallsBackToDevBanner(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = ""
	if s := String(); !strings.Contains(s, "dev build") {
		t.Errorf("String() = %q, want a dev-build banner", s)
	}

	BuildDate = "2026-03-02"
	if s := String(); !strings.Contains(s, "build 1") {
		t.Errorf("String() = %q, want the numbered banner", s)
	}
}
