// Package version derives a build number from metadata injected at
// link time:
//
//	go build -ldflags "-X delve-server/internal/version.BuildDate=2026-08-29"
//
// Builds are numbered as whole days since the project epoch, so the
// number is comparable across machines without a shared counter.
package version

import (
	"fmt"
	"time"
)

// Injected via -ldflags. Both stay empty on plain local builds.
var (
	BuildDate   string // YYYY-MM-DD, UTC
	BuildCommit string
)

var epoch = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

// Build is the structured form served on /version.
type Build struct {
	Number int    `json:"number"`
	Date   string `json:"date,omitempty"`
	Commit string `json:"commit,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Info resolves the injected metadata. Never fails: a missing or
// malformed date comes back in the Error field.
func Info() Build {
	b := Build{Date: BuildDate, Commit: BuildCommit}
	n, err := number(BuildDate)
	if err != nil {
		b.Error = err.Error()
		return b
	}
	b.Number = n
	return b
}

func number(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date not set")
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("bad build date %q: %w", date, err)
	}
	if t.Before(epoch) {
		return 0, fmt.Errorf("build date %s predates the project", date)
	}
	// Hours, not calendar days: both ends are midnight UTC so the
	// division is exact and DST never enters the picture.
	return int(t.Sub(epoch).Hours() / 24), nil
}

// String renders a one-line banner for startup logs.
func String() string {
	b := Info()
	if b.Error != "" {
		return "delve dev build (" + b.Error + ")"
	}
	commit := b.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("delve build %d (%s, commit %s)", b.Number, b.Date, commit)
}
