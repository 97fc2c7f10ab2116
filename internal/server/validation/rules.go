package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

type idInput struct {
	ID string `validate:"required,objectid"`
}

// UserID checks a route identifier and returns its normalised form.
func UserID(raw string) (string, error) {
	in := idInput{ID: Normalize(raw)}
	if err := check(in); err != nil {
		return "", err
	}
	return in.ID, nil
}

type userInput struct {
	Username string `validate:"required"`
}

// Username checks the user creation payload.
func Username(raw string) (string, error) {
	in := userInput{Username: Normalize(raw)}
	if err := check(in); err != nil {
		return "", err
	}
	return in.Username, nil
}

// ExerciseInput is the raw exercise creation payload.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

type exerciseInput struct {
	Description string `validate:"required"`
	Duration    string `validate:"required,posint"`
	Date        string `validate:"omitempty,date"`
}

// ExerciseFields is a validated exercise payload. Date is nil when the
// caller omitted it.
type ExerciseFields struct {
	Description string
	Duration    int
	Date        *time.Time
}

// Exercise checks the exercise creation payload.
func Exercise(raw ExerciseInput) (*ExerciseFields, error) {
	in := exerciseInput{
		Description: Normalize(raw.Description),
		Duration:    Normalize(raw.Duration),
		Date:        strings.TrimSpace(raw.Date),
	}
	if err := check(in); err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(in.Duration)
	if err != nil {
		return nil, err
	}

	out := &ExerciseFields{Description: in.Description, Duration: duration}
	if in.Date != "" {
		d, err := models.ParseDate(in.Date)
		if err != nil {
			return nil, err
		}
		out.Date = &d
	}
	return out, nil
}

// LogInput is the raw log query string.
type LogInput struct {
	From  string
	To    string
	Limit string
}

type logInput struct {
	From string `validate:"omitempty,date"`
	To   string `validate:"omitempty,date"`
}

// LogQuery checks the log filters. A limit that is not a positive integer
// is dropped rather than rejected.
func LogQuery(raw LogInput) (models.LogQuery, error) {
	in := logInput{From: strings.TrimSpace(raw.From), To: strings.TrimSpace(raw.To)}
	if err := check(in); err != nil {
		return models.LogQuery{}, err
	}

	var q models.LogQuery
	if in.From != "" {
		from, _ := models.ParseDate(in.From)
		q.From = &from
	}
	if in.To != "" {
		to, _ := models.ParseDate(in.To)
		q.To = &to
	}
	if n, err := strconv.Atoi(strings.TrimSpace(raw.Limit)); err == nil && n > 0 {
		q.Limit = &n
	}
	return q, nil
}
