package engine

import (
	"time"

	"delve-server/internal/tuning"
)

// Config collects the run parameters of one simulation instance.
type Config struct {
	// Addr is the listen address of the websocket layer.
	Addr string
	// Seed feeds the single PRNG. Zero picks a wall-clock seed.
	Seed int64
	// TuningPath optionally overrides the built-in tuning values.
	TuningPath string
	// RecordPath, when set, journals player actions to this file.
	RecordPath string
	// ReplayPath, when set, plays a journal back headlessly.
	ReplayPath string

	Tuning *tuning.Tuning
}

// Normalize fills defaults and loads the tuning file if one is given.
func (c *Config) Normalize() error {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Tuning == nil {
		if c.TuningPath != "" {
			t, err := tuning.Load(c.TuningPath)
			if err != nil {
				return err
			}
			c.Tuning = t
		} else {
			c.Tuning = tuning.Default()
		}
	}
	return nil
}
