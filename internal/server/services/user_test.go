package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "65a1b2c3d4e5f60718293a4b"

func TestUserService_Create(t *testing.T) {
	t.Run("trims and escapes", func(t *testing.T) {
		repo := &fakeUsersRepo{createOut: &models.User{ID: testID, Username: "a&amp;b"}}
		s := NewUserService(repo, logging.Nop())

		u, err := s.Create(context.Background(), "  a&b ")
		require.NoError(t, err)
		assert.Equal(t, testID, u.ID)
		assert.Equal(t, "a&amp;b", repo.created.Username)
	})

	t.Run("empty username never reaches the store", func(t *testing.T) {
		repo := &fakeUsersRepo{}
		s := NewUserService(repo, logging.Nop())

		_, err := s.Create(context.Background(), "   ")
		require.ErrorIs(t, err, common.ErrorValidation)
		var ve *common.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, validation.MsgUsernameEmpty, ve.Message)
		assert.Empty(t, repo.calls)
	})

	t.Run("store error wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		s := NewUserService(&fakeUsersRepo{createErr: boom}, logging.Nop())

		_, err := s.Create(context.Background(), "alice")
		assert.ErrorIs(t, err, boom)
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &fakeUsersRepo{findOut: &models.User{ID: testID, Username: "alice"}}
		u, err := NewUserService(repo, logging.Nop()).Get(context.Background(), testID)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("invalid id", func(t *testing.T) {
		repo := &fakeUsersRepo{}
		_, err := NewUserService(repo, logging.Nop()).Get(context.Background(), "xyz")
		var ve *common.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, validation.MsgIDInvalid, ve.Message)
		assert.Empty(t, repo.calls)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeUsersRepo{findErr: common.ErrorNotFound}
		_, err := NewUserService(repo, logging.Nop()).Get(context.Background(), testID)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestUserService_List(t *testing.T) {
	repo := &fakeUsersRepo{listOut: []*models.User{{ID: testID, Username: "alice"}}}
	all, err := NewUserService(repo, logging.Nop()).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	boom := errors.New("boom")
	_, err = NewUserService(&fakeUsersRepo{listErr: boom}, logging.Nop()).List(context.Background())
	assert.ErrorIs(t, err, boom)
}
