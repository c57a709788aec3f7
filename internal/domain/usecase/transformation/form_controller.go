package transformation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/external"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	imageuc "github.com/amirhossein-jamali/transform-studio/internal/domain/usecase/image"
)

// FormDeps are the collaborators a form calls out to
type FormDeps struct {
	Users   usecase.UserUseCase
	Images  usecase.ImageUseCase
	Media   external.MediaService
	Metrics coreport.Metrics
	Logger  coreport.Logger
}

// FormParams describe the form being opened
type FormParams struct {
	SessionID     string
	UserID        string
	Action        usecase.FormAction
	Kind          entity.TransformationKind
	Existing      *entity.Image
	CreditBalance int64
	CreditFee     int64
	EditWindow    time.Duration
}

// FormController holds the state of one transformation form.
// It is not safe for concurrent use; the session manager serializes access.
type FormController struct {
	deps FormDeps

	sessionID string
	userID    string
	action    usecase.FormAction
	kind      entity.TransformationKind
	existing  *entity.Image

	creditBalance int64
	creditFee     int64

	title       string
	aspectRatio string
	color       string
	prompt      string
	image       usecase.ImageUpload

	// pending is nil when no change is staged
	pending  entity.TransformationConfig
	resolved entity.TransformationConfig
	preview  string
	edits    *EditCoalescer

	dirty        bool
	applied      bool
	transforming bool
	submitting   bool
	saved        bool
}

// NewFormController opens a form; update forms start from the existing image
func NewFormController(params FormParams, deps FormDeps) (*FormController, error) {
	if params.SessionID == "" || params.UserID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if !params.Kind.Type.IsValid() {
		return nil, errs.ErrInvalidTransformationType
	}

	action := params.Action
	if action == "" {
		action = usecase.FormActionAdd
	}

	c := &FormController{
		deps:          deps,
		sessionID:     params.SessionID,
		userID:        params.UserID,
		action:        action,
		kind:          params.Kind,
		creditBalance: params.CreditBalance,
		creditFee:     entity.AbsFee(params.CreditFee),
		edits:         NewEditCoalescer(params.EditWindow),
	}

	switch action {
	case usecase.FormActionAdd:
	case usecase.FormActionUpdate:
		if params.Existing == nil {
			return nil, errs.ErrInvalidRequest
		}
		existing := params.Existing
		c.existing = existing
		c.title = existing.Title
		c.aspectRatio = existing.AspectRatio
		c.color = existing.Color
		c.prompt = existing.Prompt
		c.image = usecase.ImageUpload{
			PublicID:  existing.PublicID,
			SecureURL: existing.SecureURL,
			Width:     existing.Width,
			Height:    existing.Height,
		}
		c.resolved = existing.Config.Clone()
		c.refreshPreview()
	default:
		return nil, errs.ErrInvalidRequest
	}

	return c, nil
}

// SetTitle updates the title field
func (c *FormController) SetTitle(title string) {
	c.title = title
	c.touch()
}

// SetImage records an uploaded image. Types that need no parameters stage their default config.
func (c *FormController) SetImage(upload usecase.ImageUpload) error {
	if strings.TrimSpace(upload.PublicID) == "" {
		return errs.NewValidationError("publicId")
	}
	if upload.Width < 0 || upload.Height < 0 {
		return errs.ErrInvalidRequest
	}

	c.image = upload
	if c.kind.Type.StagesOnUpload() {
		c.pending = c.kind.DefaultConfig.Clone()
	}
	c.touch()
	c.refreshPreview()
	return nil
}

// SelectAspectRatio sizes a fill canvas from a preset and stages the fill config
func (c *FormController) SelectAspectRatio(key string) error {
	if c.kind.Type != entity.TransformationFill {
		return errs.ErrInvalidRequest
	}
	option, err := entity.LookupAspectRatio(key)
	if err != nil {
		return err
	}

	c.aspectRatio = option.Key
	c.image.Width = option.Width
	c.image.Height = option.Height
	c.pending = c.kind.DefaultConfig.Clone()
	c.touch()
	return nil
}

// EditField updates a prompt or color field. The staged change is coalesced
// with later edits of the same field until the edit window has passed.
func (c *FormController) EditField(field usecase.FormField, value string, now time.Time) error {
	if !c.kind.Type.UsesPrompt() {
		return errs.ErrInvalidRequest
	}

	switch field {
	case usecase.FieldPrompt:
		c.prompt = value
	case usecase.FieldColor:
		if c.kind.Type != entity.TransformationRecolor {
			return errs.ErrInvalidRequest
		}
		c.color = value
	default:
		return errs.ErrInvalidRequest
	}

	c.edits.Record(field, value, now)
	c.touch()
	c.settle(now)
	return nil
}

// InsufficientCredits reports whether the balance cannot cover one apply
func (c *FormController) InsufficientCredits() bool {
	return c.creditBalance < c.creditFee
}

// CanApply reports whether Apply would go ahead at now
func (c *FormController) CanApply(now time.Time) bool {
	c.settle(now)
	return !c.transforming && c.hasPending() && !c.InsufficientCredits()
}

// Apply charges the fee and merges the staged change into the resolved config.
// Nothing is merged when the charge fails.
func (c *FormController) Apply(ctx context.Context, now time.Time) error {
	if c.transforming {
		return errs.ErrTransformInFlight
	}
	c.flush()
	if c.pending == nil {
		return errs.ErrNothingToApply
	}
	if c.InsufficientCredits() {
		return errs.NewInsufficientCreditsError(c.userID, c.creditFee, c.creditBalance)
	}

	c.transforming = true
	defer func() { c.transforming = false }()

	// a zero fee makes transformations free and skips the charge
	if c.creditFee > 0 {
		user, err := c.deps.Users.SpendCredits(ctx, c.userID, c.creditFee, c.sessionID)
		if err != nil {
			var creditsErr *errs.InsufficientCreditsError
			if errors.As(err, &creditsErr) {
				c.creditBalance = creditsErr.Available
			}
			c.deps.Logger.Warn("Transformation charge failed", map[string]any{
				"sessionId": c.sessionID,
				"userId":    c.userID,
				"error":     err.Error(),
			})
			return err
		}
		c.creditBalance = user.CreditBalance
	}

	c.resolved = entity.DeepMerge(c.pending, c.resolved)
	c.pending = nil
	c.applied = true
	c.saved = false
	c.refreshPreview()

	if c.deps.Metrics != nil {
		c.deps.Metrics.TransformationApplied(string(c.kind.Type))
		c.deps.Metrics.CreditsSpent(c.creditFee)
	}
	c.deps.Logger.Info("Transformation applied", map[string]any{
		"sessionId":          c.sessionID,
		"userId":             c.userID,
		"transformationType": string(c.kind.Type),
		"creditBalance":      c.creditBalance,
	})
	return nil
}

// Save persists the image built from the form. Missing image fields make it a no-op.
func (c *FormController) Save(ctx context.Context, now time.Time) (*usecase.SaveResult, error) {
	if c.submitting {
		return nil, errs.ErrSubmitInFlight
	}
	c.settle(now)

	if missing := c.missingImageFields(); len(missing) > 0 {
		state := c.Snapshot(now)
		return &usecase.SaveResult{Saved: false, MissingFields: missing, State: &state}, nil
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	transformationURL, err := c.deps.Media.BuildTransformationURL(c.image.PublicID, c.image.Width, c.image.Height, c.resolved)
	if err != nil {
		return nil, err
	}

	input := entity.ImageInput{
		Title:              c.title,
		TransformationType: c.kind.Type,
		PublicID:           c.image.PublicID,
		SecureURL:          c.image.SecureURL,
		TransformationURL:  transformationURL,
		Width:              c.image.Width,
		Height:             c.image.Height,
		AspectRatio:        c.aspectRatio,
		Config:             c.resolved.Clone(),
		Color:              c.color,
		Prompt:             c.prompt,
	}

	var image *entity.Image
	if c.action == usecase.FormActionUpdate {
		image, err = c.deps.Images.UpdateImage(ctx, c.existing.ID, input, c.userID, imageuc.DetailPath(c.existing.ID))
	} else {
		image, err = c.deps.Images.AddImage(ctx, input, c.userID, imageuc.HomePath)
	}
	if err != nil {
		return nil, err
	}

	c.saved = true
	if c.deps.Metrics != nil {
		c.deps.Metrics.ImageSaved(string(c.action))
	}
	// later saves update the stored record
	c.action = usecase.FormActionUpdate
	c.existing = image

	c.submitting = false
	state := c.Snapshot(now)
	return &usecase.SaveResult{
		Saved:        true,
		Image:        image,
		RedirectPath: imageuc.DetailPath(image.ID),
		State:        &state,
	}, nil
}

// Phase derives where the form is in its lifecycle
func (c *FormController) Phase() usecase.FormPhase {
	switch {
	case c.submitting:
		return usecase.PhaseSubmitting
	case c.transforming:
		return usecase.PhaseTransforming
	case c.saved:
		return usecase.PhaseSaved
	case c.hasPending():
		return usecase.PhaseEditing
	case c.applied:
		return usecase.PhaseTransformed
	case c.dirty:
		return usecase.PhaseEditing
	default:
		return usecase.PhaseIdle
	}
}

// Snapshot returns the current state after settling due edits
func (c *FormController) Snapshot(now time.Time) usecase.FormState {
	c.settle(now)

	state := usecase.FormState{
		SessionID:            c.sessionID,
		Action:               c.action,
		TransformationType:   c.kind.Type,
		Phase:                c.Phase(),
		Title:                c.title,
		AspectRatio:          c.aspectRatio,
		Color:                c.color,
		Prompt:               c.prompt,
		Image:                c.image,
		PendingConfig:        c.pending.Clone(),
		TransformationConfig: c.resolved.Clone(),
		PreviewURL:           c.preview,
		Transforming:         c.transforming,
		Submitting:           c.submitting,
		CanApply:             !c.transforming && c.hasPending() && !c.InsufficientCredits(),
		CanSave:              !c.submitting && len(c.missingImageFields()) == 0 && strings.TrimSpace(c.title) != "",
		CreditBalance:        c.creditBalance,
		CreditFee:            c.creditFee,
		InsufficientCredits:  c.InsufficientCredits(),
	}
	if c.existing != nil {
		state.ImageID = c.existing.ID
	}
	return state
}

// UserID returns the form owner
func (c *FormController) UserID() string {
	return c.userID
}

func (c *FormController) hasPending() bool {
	return c.pending != nil || c.edits.Pending()
}

func (c *FormController) touch() {
	c.dirty = true
	c.saved = false
}

func (c *FormController) settle(now time.Time) {
	for _, edit := range c.edits.Settle(now) {
		c.stageEdit(edit)
	}
}

func (c *FormController) flush() {
	for _, edit := range c.edits.Flush() {
		c.stageEdit(edit)
	}
}

// stageEdit merges {type: {prompt|to: value}} into the pending change
func (c *FormController) stageEdit(edit FieldEdit) {
	key := "prompt"
	if edit.Field == usecase.FieldColor {
		key = "to"
	}
	delta := entity.TransformationConfig{
		string(c.kind.Type): map[string]any{key: edit.Value},
	}
	c.pending = entity.DeepMerge(delta, c.pending)
}

func (c *FormController) missingImageFields() []string {
	var missing []string
	if strings.TrimSpace(c.image.PublicID) == "" {
		missing = append(missing, "publicId")
	}
	if c.image.Height <= 0 {
		missing = append(missing, "height")
	}
	if c.image.Width <= 0 {
		missing = append(missing, "width")
	}
	if strings.TrimSpace(c.image.SecureURL) == "" {
		missing = append(missing, "secureUrl")
	}
	return missing
}

func (c *FormController) refreshPreview() {
	if c.image.PublicID == "" || len(c.resolved) == 0 {
		c.preview = ""
		return
	}
	url, err := c.deps.Media.BuildTransformationURL(c.image.PublicID, c.image.Width, c.image.Height, c.resolved)
	if err != nil {
		c.deps.Logger.Warn("Failed to build preview URL", map[string]any{
			"sessionId": c.sessionID,
			"publicId":  c.image.PublicID,
			"error":     err.Error(),
		})
		c.preview = ""
		return
	}
	c.preview = url
}
