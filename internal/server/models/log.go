package models

import "time"

// LogQuery narrows a user's log. From and To are inclusive calendar days;
// nil means unbounded. Limit keeps the first N surviving entries; nil or a
// non-positive value means no limit.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit *int
}

// HasLimit reports whether Limit should be applied.
func (q LogQuery) HasLimit() bool {
	return q.Limit != nil && *q.Limit > 0
}

// Lower returns the earliest instant an entry may have, or false when From is unset.
func (q LogQuery) Lower() (time.Time, bool) {
	if q.From == nil {
		return time.Time{}, false
	}
	return StartOfDay(*q.From), true
}

// Upper returns the exclusive upper instant (start of the day after To),
// or false when To is unset.
func (q LogQuery) Upper() (time.Time, bool) {
	if q.To == nil {
		return time.Time{}, false
	}
	return StartOfDay(*q.To).AddDate(0, 0, 1), true
}

// Match reports whether an entry dated d survives the date filters.
func (q LogQuery) Match(d time.Time) bool {
	if lo, ok := q.Lower(); ok && d.Before(lo) {
		return false
	}
	if hi, ok := q.Upper(); ok && !d.Before(hi) {
		return false
	}
	return true
}

// LogStatus tags the outcome of a log query.
type LogStatus int

const (
	// LogFound means at least one entry survived the filters.
	LogFound LogStatus = iota
	// LogEmpty means the user exists but no entry survived.
	LogEmpty
	// LogUserMissing means no user has the requested id.
	LogUserMissing
)

func (s LogStatus) String() string {
	switch s {
	case LogFound:
		return "found"
	case LogEmpty:
		return "empty"
	case LogUserMissing:
		return "user_missing"
	default:
		return "unknown"
	}
}

// UserLog is the result of a log query. Count is the user's stored total,
// not the length of Log.
type UserLog struct {
	Status   LogStatus
	ID       string
	Username string
	Count    int
	Query    LogQuery
	Log      []Exercise
}
