package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/services"
	"github.com/dmitrijs2005/exercisetracker/internal/server/validation"
	"github.com/go-chi/chi/v5"
)

// UserService is the user lifecycle used by the handlers.
type UserService interface {
	Create(ctx context.Context, username string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// ExerciseService is the exercise log used by the handlers.
type ExerciseService interface {
	AddExercise(ctx context.Context, id string, in validation.ExerciseInput) (*services.AddedExercise, error)
	Log(ctx context.Context, id string, in validation.LogInput) (*models.UserLog, error)
}

type handlers struct {
	users     UserService
	exercises ExerciseService
	logger    logging.Logger
}

func (h *handlers) fields(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	f, err := readFields(w, r)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, msgMalformedBody)
			return nil, false
		}
		writeError(w, http.StatusBadRequest, msgMalformedBody)
		return nil, false
	}
	return f, true
}

func (h *handlers) createUser(w http.ResponseWriter, r *http.Request) {
	f, ok := h.fields(w, r)
	if !ok {
		return
	}

	u, err := h.users.Create(r.Context(), f["username"])
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newUserResponse(u))
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	all, err := h.users.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	resp := make([]userResponse, 0, len(all))
	for _, u := range all {
		resp = append(resp, newUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(u))
}

func (h *handlers) addExercise(w http.ResponseWriter, r *http.Request) {
	f, ok := h.fields(w, r)
	if !ok {
		return
	}

	added, err := h.exercises.AddExercise(r.Context(), chi.URLParam(r, "id"), validation.ExerciseInput{
		Description: f["description"],
		Duration:    f["duration"],
		Date:        f["date"],
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newExerciseResponse(added))
}

func (h *handlers) userLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	l, err := h.exercises.Log(r.Context(), chi.URLParam(r, "id"), validation.LogInput{
		From:  q.Get("from"),
		To:    q.Get("to"),
		Limit: q.Get("limit"),
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newLogResponse(l))
}
