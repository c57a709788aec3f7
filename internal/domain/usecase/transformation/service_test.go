package transformation

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *formFixture, *testClock) {
	f := newFormFixture(t)
	clock := &testClock{now: start}
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().RunAndReturn(clock.Now).Maybe()

	sessions := NewSessionManager(f.logger, mockTime, f.metrics, SessionConfig{MaxSessions: 10})
	t.Cleanup(sessions.Shutdown)

	svc := NewTransformationService(sessions, f.users, f.images, f.media, f.metrics, mockTime, f.logger, ServiceConfig{
		CreditFee:  -1,
		EditWindow: time.Second,
	})
	return svc.(*Service), f, clock
}

func TestService_Catalog(t *testing.T) {
	svc, _, _ := newTestService(t)

	catalog := svc.Catalog()

	assert.Len(t, catalog.Kinds, 5)
	assert.Len(t, catalog.AspectRatios, 3)
	assert.Equal(t, int64(1), catalog.CreditFee)
}

func TestService_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Add session", func(t *testing.T) {
		svc, f, _ := newTestService(t)
		f.users.EXPECT().GetByID(ctx, "u1").Return(&entity.User{ID: "u1", CreditBalance: 4}, nil).Once()

		state, err := svc.StartSession(ctx, "u1", usecase.StartSessionInput{TransformationType: entity.TransformationFill})

		require.NoError(t, err)
		assert.NotEmpty(t, state.SessionID)
		assert.Equal(t, usecase.FormActionAdd, state.Action)
		assert.Equal(t, int64(4), state.CreditBalance)
		assert.Equal(t, int64(1), state.CreditFee)
		assert.Equal(t, usecase.PhaseIdle, state.Phase)
	})

	t.Run("Unknown type", func(t *testing.T) {
		svc, f, _ := newTestService(t)
		f.users.EXPECT().GetByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil).Once()

		_, err := svc.StartSession(ctx, "u1", usecase.StartSessionInput{TransformationType: "blur"})

		assert.Equal(t, errs.ErrInvalidTransformationType, err)
	})

	t.Run("Update session takes type from the image", func(t *testing.T) {
		svc, f, _ := newTestService(t)
		f.users.EXPECT().GetByID(ctx, "u1").Return(&entity.User{ID: "u1", CreditBalance: 4}, nil).Once()
		f.images.EXPECT().GetImageByID(ctx, "img1").Return(&entity.Image{
			ID: "img1", AuthorID: "u1", TransformationType: entity.TransformationRestore, Title: "Old",
		}, nil).Once()

		state, err := svc.StartSession(ctx, "u1", usecase.StartSessionInput{Action: usecase.FormActionUpdate, ImageID: "img1"})

		require.NoError(t, err)
		assert.Equal(t, entity.TransformationRestore, state.TransformationType)
		assert.Equal(t, "img1", state.ImageID)
		assert.Equal(t, "Old", state.Title)
	})

	t.Run("Update session for someone else's image", func(t *testing.T) {
		svc, f, _ := newTestService(t)
		f.users.EXPECT().GetByID(ctx, "u2").Return(&entity.User{ID: "u2"}, nil).Once()
		f.images.EXPECT().GetImageByID(ctx, "img1").Return(&entity.Image{
			ID: "img1", AuthorID: "u1", TransformationType: entity.TransformationRestore,
		}, nil).Once()

		_, err := svc.StartSession(ctx, "u2", usecase.StartSessionInput{Action: usecase.FormActionUpdate, ImageID: "img1"})

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, f, _ := newTestService(t)
		f.users.EXPECT().GetByID(ctx, "u9").Return(nil, errs.ErrUserNotFound).Once()

		_, err := svc.StartSession(ctx, "u9", usecase.StartSessionInput{TransformationType: entity.TransformationFill})

		assert.Equal(t, errs.ErrUserNotFound, err)
	})
}

func TestService_FormFlow(t *testing.T) {
	ctx := context.Background()
	svc, f, clock := newTestService(t)
	f.users.EXPECT().GetByID(ctx, "u1").Return(&entity.User{ID: "u1", CreditBalance: 3}, nil).Once()

	state, err := svc.StartSession(ctx, "u1", usecase.StartSessionInput{TransformationType: entity.TransformationRecolor})
	require.NoError(t, err)
	id := state.SessionID

	_, err = svc.SetTitle(ctx, "u1", id, "Blue car")
	require.NoError(t, err)

	_, err = svc.SetImage(ctx, "u1", id, usecase.ImageUpload{
		PublicID: "imaginify/car", SecureURL: "https://res.example.com/car.png", Width: 640, Height: 480,
	})
	require.NoError(t, err)

	_, err = svc.SelectAspectRatio(ctx, "u1", id, "1:1")
	assert.Equal(t, errs.ErrInvalidRequest, err)

	_, err = svc.EditField(ctx, "u1", id, usecase.FieldPrompt, "car")
	require.NoError(t, err)
	state, err = svc.EditField(ctx, "u1", id, usecase.FieldColor, "blue")
	require.NoError(t, err)
	assert.Nil(t, state.PendingConfig)

	clock.Advance(2 * time.Second)
	state, err = svc.GetSession(ctx, "u1", id)
	require.NoError(t, err)
	assert.Equal(t, entity.TransformationConfig{
		"recolor": map[string]any{"prompt": "car", "to": "blue"},
	}, state.PendingConfig)

	f.users.EXPECT().SpendCredits(ctx, "u1", int64(1), id).Return(&entity.User{ID: "u1", CreditBalance: 2}, nil).Once()
	f.media.EXPECT().BuildTransformationURL("imaginify/car", 640, 480, mock.Anything).
		Return("https://cdn.example.com/car-blue", nil).Twice()

	state, err = svc.Apply(ctx, "u1", id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), state.CreditBalance)
	assert.Equal(t, "https://cdn.example.com/car-blue", state.PreviewURL)

	f.images.EXPECT().AddImage(ctx, mock.MatchedBy(func(in entity.ImageInput) bool {
		return in.Title == "Blue car" && in.Color == "blue" && in.Prompt == "car"
	}), "u1", "/").Return(&entity.Image{ID: "img3"}, nil).Once()

	result, err := svc.Save(ctx, "u1", id)
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Equal(t, "/transformations/img3", result.RedirectPath)

	require.NoError(t, svc.CloseSession(ctx, "u1", id))
	_, err = svc.GetSession(ctx, "u1", id)
	assert.Equal(t, errs.ErrSessionNotFound, err)
}
