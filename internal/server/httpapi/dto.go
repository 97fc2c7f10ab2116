package httpapi

import (
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/services"
)

type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

type exerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

func newExerciseResponse(a *services.AddedExercise) exerciseResponse {
	return exerciseResponse{
		ID:          a.User.ID,
		Username:    a.User.Username,
		Date:        models.FormatDate(a.Exercise.Date),
		Duration:    a.Exercise.Duration,
		Description: a.Exercise.Description,
	}
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username,omitempty"`
	Count    int        `json:"count"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
	Limit    *int       `json:"limit"`
	Log      []logEntry `json:"log"`
}

func newLogResponse(l *models.UserLog) logResponse {
	resp := logResponse{
		ID:       l.ID,
		Username: l.Username,
		Count:    l.Count,
		Limit:    l.Query.Limit,
		Log:      make([]logEntry, 0, len(l.Log)),
	}
	if l.Query.From != nil {
		resp.From = models.FormatDate(*l.Query.From)
	}
	if l.Query.To != nil {
		resp.To = models.FormatDate(*l.Query.To)
	}
	for _, e := range l.Log {
		resp.Log = append(resp.Log, logEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        models.FormatDate(e.Date),
		})
	}
	return resp
}
