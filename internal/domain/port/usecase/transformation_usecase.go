package usecase

import (
	"context"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
)

// FormAction says whether a session creates a new image or edits an existing one
type FormAction string

// Form actions
const (
	FormActionAdd    FormAction = "add"
	FormActionUpdate FormAction = "update"
)

// FormPhase is the derived lifecycle position of a transformation form
type FormPhase string

// Form phases
const (
	PhaseIdle         FormPhase = "idle"
	PhaseEditing      FormPhase = "editing"
	PhaseTransforming FormPhase = "transforming"
	PhaseTransformed  FormPhase = "transformed"
	PhaseSubmitting   FormPhase = "submitting"
	PhaseSaved        FormPhase = "saved"
)

// FormField names a free-text field staged through edit coalescing
type FormField string

// Coalesced form fields
const (
	FieldPrompt FormField = "prompt"
	FieldColor  FormField = "color"
)

// StartSessionInput opens a transformation form
type StartSessionInput struct {
	Action             FormAction
	TransformationType entity.TransformationType
	ImageID            string
}

// ImageUpload describes an image the client uploaded to the media service
type ImageUpload struct {
	PublicID  string
	SecureURL string
	Width     int
	Height    int
}

// FormState is a point-in-time view of a transformation form
type FormState struct {
	SessionID            string
	Action               FormAction
	TransformationType   entity.TransformationType
	Phase                FormPhase
	ImageID              string
	Title                string
	AspectRatio          string
	Color                string
	Prompt               string
	Image                ImageUpload
	PendingConfig        entity.TransformationConfig
	TransformationConfig entity.TransformationConfig
	PreviewURL           string
	Transforming         bool
	Submitting           bool
	CanApply             bool
	CanSave              bool
	CreditBalance        int64
	CreditFee            int64
	InsufficientCredits  bool
}

// SaveResult reports the outcome of a save. A save with missing image fields
// is a no-op: Saved is false and MissingFields lists what is absent.
type SaveResult struct {
	Saved         bool
	MissingFields []string
	Image         *entity.Image
	RedirectPath  string
	State         *FormState
}

// TransformationCatalog lists presets available to clients
type TransformationCatalog struct {
	Kinds        []entity.TransformationKind
	AspectRatios []entity.AspectRatioOption
	CreditFee    int64
}

// TransformationUseCase drives server-side transformation forms
type TransformationUseCase interface {
	// Catalog returns the available presets and the per-apply fee
	Catalog() TransformationCatalog

	// StartSession opens a form owned by userID
	StartSession(ctx context.Context, userID string, input StartSessionInput) (*FormState, error)

	// GetSession returns the current state of a form
	GetSession(ctx context.Context, userID, sessionID string) (*FormState, error)

	// SetTitle updates the title field
	SetTitle(ctx context.Context, userID, sessionID, title string) (*FormState, error)

	// SetImage records an uploaded image
	SetImage(ctx context.Context, userID, sessionID string, upload ImageUpload) (*FormState, error)

	// SelectAspectRatio picks a fill preset
	SelectAspectRatio(ctx context.Context, userID, sessionID, key string) (*FormState, error)

	// EditField updates a coalesced prompt or color field
	EditField(ctx context.Context, userID, sessionID string, field FormField, value string) (*FormState, error)

	// Apply charges the fee and merges the pending change into the resolved config
	Apply(ctx context.Context, userID, sessionID string) (*FormState, error)

	// Save persists the image built from the form
	Save(ctx context.Context, userID, sessionID string) (*SaveResult, error)

	// CloseSession discards a form
	CloseSession(ctx context.Context, userID, sessionID string) error
}
