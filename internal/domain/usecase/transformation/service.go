package transformation

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/external"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// ServiceConfig carries the tunables of the transformation service
type ServiceConfig struct {
	CreditFee  int64
	EditWindow time.Duration
}

// Service drives transformation forms held by a session manager
type Service struct {
	sessions     *SessionManager
	users        usecase.UserUseCase
	images       usecase.ImageUseCase
	media        external.MediaService
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       ServiceConfig
}

// NewTransformationService creates a new transformation service
func NewTransformationService(
	sessions *SessionManager,
	users usecase.UserUseCase,
	images usecase.ImageUseCase,
	media external.MediaService,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config ServiceConfig,
) usecase.TransformationUseCase {
	config.CreditFee = entity.AbsFee(config.CreditFee)
	return &Service{
		sessions:     sessions,
		users:        users,
		images:       images,
		media:        media,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Catalog returns the available presets and the per-apply fee
func (s *Service) Catalog() usecase.TransformationCatalog {
	return usecase.TransformationCatalog{
		Kinds:        entity.TransformationKinds(),
		AspectRatios: entity.AspectRatioOptions(),
		CreditFee:    s.config.CreditFee,
	}
}

// StartSession opens a form for userID
func (s *Service) StartSession(ctx context.Context, userID string, input usecase.StartSessionInput) (*usecase.FormState, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var existing *entity.Image
	transformationType := input.TransformationType
	if input.Action == usecase.FormActionUpdate {
		existing, err = s.images.GetImageByID(ctx, input.ImageID)
		if err != nil {
			return nil, err
		}
		if !existing.OwnedBy(userID) {
			return nil, errs.NewAuthorizationError("image", existing.ID, userID, existing.AuthorID)
		}
		if transformationType == "" {
			transformationType = existing.TransformationType
		}
		if transformationType != existing.TransformationType {
			return nil, errs.ErrInvalidRequest
		}
	}

	kind, err := entity.LookupTransformation(transformationType)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	form, err := NewFormController(FormParams{
		SessionID:     sessionID,
		UserID:        userID,
		Action:        input.Action,
		Kind:          kind,
		Existing:      existing,
		CreditBalance: user.CreditBalance,
		CreditFee:     s.config.CreditFee,
		EditWindow:    s.config.EditWindow,
	}, FormDeps{
		Users:   s.users,
		Images:  s.images,
		Media:   s.media,
		Metrics: s.metrics,
		Logger:  s.logger,
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Open(sessionID, form); err != nil {
		return nil, err
	}

	s.logger.Info("Transformation session started", map[string]any{
		"sessionId":          sessionID,
		"userId":             userID,
		"transformationType": string(kind.Type),
		"action":             string(form.action),
	})

	state := form.Snapshot(s.timeProvider.Now())
	return &state, nil
}

// GetSession returns the current state of a form
func (s *Service) GetSession(ctx context.Context, userID, sessionID string) (*usecase.FormState, error) {
	return s.mutate(ctx, userID, sessionID, func(context.Context, *FormController, time.Time) error {
		return nil
	})
}

// SetTitle updates the title field
func (s *Service) SetTitle(ctx context.Context, userID, sessionID, title string) (*usecase.FormState, error) {
	return s.mutate(ctx, userID, sessionID, func(_ context.Context, form *FormController, _ time.Time) error {
		form.SetTitle(title)
		return nil
	})
}

// SetImage records an uploaded image
func (s *Service) SetImage(ctx context.Context, userID, sessionID string, upload usecase.ImageUpload) (*usecase.FormState, error) {
	return s.mutate(ctx, userID, sessionID, func(_ context.Context, form *FormController, _ time.Time) error {
		return form.SetImage(upload)
	})
}

// SelectAspectRatio picks a fill preset
func (s *Service) SelectAspectRatio(ctx context.Context, userID, sessionID, key string) (*usecase.FormState, error) {
	return s.mutate(ctx, userID, sessionID, func(_ context.Context, form *FormController, _ time.Time) error {
		return form.SelectAspectRatio(key)
	})
}

// EditField updates a coalesced prompt or color field
func (s *Service) EditField(
	ctx context.Context,
	userID, sessionID string,
	field usecase.FormField,
	value string,
) (*usecase.FormState, error) {
	return s.mutate(ctx, userID, sessionID, func(_ context.Context, form *FormController, now time.Time) error {
		return form.EditField(field, value, now)
	})
}

// Apply charges the fee and merges the pending change
func (s *Service) Apply(ctx context.Context, userID, sessionID string) (*usecase.FormState, error) {
	return s.mutate(ctx, userID, sessionID, func(ctx context.Context, form *FormController, now time.Time) error {
		return form.Apply(ctx, now)
	})
}

// Save persists the image built from the form
func (s *Service) Save(ctx context.Context, userID, sessionID string) (*usecase.SaveResult, error) {
	var result *usecase.SaveResult
	err := s.sessions.Do(ctx, userID, sessionID, func(ctx context.Context, form *FormController) error {
		var err error
		result, err = form.Save(ctx, s.timeProvider.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CloseSession discards a form
func (s *Service) CloseSession(_ context.Context, userID, sessionID string) error {
	return s.sessions.Close(userID, sessionID)
}

// mutate runs fn on the session worker and returns the resulting state
func (s *Service) mutate(
	ctx context.Context,
	userID, sessionID string,
	fn func(ctx context.Context, form *FormController, now time.Time) error,
) (*usecase.FormState, error) {
	var state usecase.FormState
	err := s.sessions.Do(ctx, userID, sessionID, func(ctx context.Context, form *FormController) error {
		now := s.timeProvider.Now()
		if err := fn(ctx, form, now); err != nil {
			return err
		}
		state = form.Snapshot(now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}
