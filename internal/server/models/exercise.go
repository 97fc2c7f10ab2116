package models

import "time"

// Exercise is one logged workout entry embedded in its User.
type Exercise struct {
	Description string
	Duration    int
	Date        time.Time
}
