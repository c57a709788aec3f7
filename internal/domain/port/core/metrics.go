package core

// Metrics records domain events for monitoring
type Metrics interface {
	// TransformationApplied counts one applied transformation of the given type
	TransformationApplied(transformationType string)

	// CreditsSpent adds to the total of credits charged for transformations
	CreditsSpent(amount int64)

	// ImageSaved counts one image persisted through a form, by action
	ImageSaved(action string)

	// ActiveSessions reports the number of live transformation sessions
	ActiveSessions(count int)
}
