package config

import (
	"fmt"
	"time"
)

// Config holds everything the run needs, assembled from CLI flags. There are
// no environment variables and no config file.
type Config struct {
	Username   string
	Password   string
	OrderID    string // optional: report this order only
	StoreDates bool
	DatesDir   string // where <orderID>.json date files live
	Timeout    time.Duration
	Verbose    bool
	NoColor    bool
}

func (c Config) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("--username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("--password is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("--timeout must be positive")
	}
	return nil
}
