package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/services"
	"github.com/dmitrijs2005/exercisetracker/internal/server/validation"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	listErr error
	panics  bool
}

func (f *fakeUserService) Create(ctx context.Context, username string) (*models.User, error) {
	return &models.User{ID: missingID, Username: username}, nil
}

func (f *fakeUserService) Get(ctx context.Context, id string) (*models.User, error) {
	if f.panics {
		panic("boom")
	}
	return &models.User{ID: id}, nil
}

func (f *fakeUserService) List(ctx context.Context) ([]*models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return nil, nil
}

type fakeExerciseService struct {
	gotInput validation.ExerciseInput
}

func (f *fakeExerciseService) AddExercise(ctx context.Context, id string, in validation.ExerciseInput) (*services.AddedExercise, error) {
	f.gotInput = in
	return &services.AddedExercise{User: &models.User{ID: id}}, nil
}

func (f *fakeExerciseService) Log(ctx context.Context, id string, in validation.LogInput) (*models.UserLog, error) {
	return &models.UserLog{ID: id}, nil
}

func TestHandlers_InternalErrorHidesCause(t *testing.T) {
	us := &fakeUserService{listErr: errors.New("db error: connection reset")}
	h := NewRouter(RouterOptions{}, logging.Nop(), us, &fakeExerciseService{})

	rec := do(t, h, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternal, decode(t, rec)["error"])
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestHandlers_PanicRecovered(t *testing.T) {
	h := NewRouter(RouterOptions{}, logging.Nop(), &fakeUserService{panics: true}, &fakeExerciseService{})

	rec := do(t, h, http.MethodGet, "/api/users/"+missingID, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternal, decode(t, rec)["error"])
}

func TestHandlers_JSONNumbersPassedAsText(t *testing.T) {
	es := &fakeExerciseService{}
	h := NewRouter(RouterOptions{}, logging.Nop(), &fakeUserService{}, es)

	req := jsonRequest(http.MethodPost, "/api/users/"+missingID+"/exercises", `{"description":"x","duration":12,"date":null}`)
	rec := serve(h, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, validation.ExerciseInput{Description: "x", Duration: "12"}, es.gotInput)
}

func TestHandlers_NestedJSONRejected(t *testing.T) {
	h := NewRouter(RouterOptions{}, logging.Nop(), &fakeUserService{}, &fakeExerciseService{})

	rec := serve(h, jsonRequest(http.MethodPost, "/api/users", `{"username":{"$ne":""}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgMalformedBody, decode(t, rec)["error"])
}

func TestHandlers_OversizedBody(t *testing.T) {
	h := NewRouter(RouterOptions{}, logging.Nop(), &fakeUserService{}, &fakeExerciseService{})

	big := `{"username":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := serve(h, jsonRequest(http.MethodPost, "/api/users", big))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
