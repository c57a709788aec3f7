package entity

import (
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
)

// TransformationType identifies one of the image-edit presets
type TransformationType string

// Transformation types
const (
	TransformationRestore          TransformationType = "restore"
	TransformationRemoveBackground TransformationType = "removeBackground"
	TransformationFill             TransformationType = "fill"
	TransformationRemove           TransformationType = "remove"
	TransformationRecolor          TransformationType = "recolor"
)

// TransformationKind describes a preset and its default configuration shape
type TransformationKind struct {
	Type          TransformationType   `json:"type"`
	Title         string               `json:"title"`
	Subtitle      string               `json:"subtitle"`
	ConfigKey     string               `json:"configKey"`
	DefaultConfig TransformationConfig `json:"defaultConfig"`
}

// AspectRatioOption is a preset canvas used by generative fill
type AspectRatioOption struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

var transformationKinds = []TransformationKind{
	{
		Type:          TransformationRestore,
		Title:         "Restore Image",
		Subtitle:      "Refine images by removing noise and imperfections",
		ConfigKey:     "restore",
		DefaultConfig: TransformationConfig{"restore": true},
	},
	{
		Type:          TransformationRemoveBackground,
		Title:         "Background Remove",
		Subtitle:      "Removes the background of the image using AI",
		ConfigKey:     "removeBackground",
		DefaultConfig: TransformationConfig{"removeBackground": true},
	},
	{
		Type:          TransformationFill,
		Title:         "Generative Fill",
		Subtitle:      "Enhance an image's dimensions using AI outpainting",
		ConfigKey:     "fillBackground",
		DefaultConfig: TransformationConfig{"fillBackground": true},
	},
	{
		Type:      TransformationRemove,
		Title:     "Object Remove",
		Subtitle:  "Identify and eliminate objects from images",
		ConfigKey: "remove",
		DefaultConfig: TransformationConfig{"remove": map[string]any{
			"prompt":       "",
			"removeShadow": true,
			"multiple":     true,
		}},
	},
	{
		Type:      TransformationRecolor,
		Title:     "Object Recolor",
		Subtitle:  "Identify and recolor objects from the image",
		ConfigKey: "recolor",
		DefaultConfig: TransformationConfig{"recolor": map[string]any{
			"prompt":   "",
			"to":       "",
			"multiple": true,
		}},
	},
}

var aspectRatioOptions = []AspectRatioOption{
	{Key: "1:1", Label: "Square (1:1)", Width: 1000, Height: 1000},
	{Key: "3:4", Label: "Standard Portrait (3:4)", Width: 1000, Height: 1334},
	{Key: "9:16", Label: "Phone Portrait (9:16)", Width: 1000, Height: 1778},
}

// TransformationKinds returns the catalog of presets in display order
func TransformationKinds() []TransformationKind {
	kinds := make([]TransformationKind, len(transformationKinds))
	for i, k := range transformationKinds {
		k.DefaultConfig = k.DefaultConfig.Clone()
		kinds[i] = k
	}
	return kinds
}

// LookupTransformation returns the preset for the given type
func LookupTransformation(t TransformationType) (TransformationKind, error) {
	for _, k := range transformationKinds {
		if k.Type == t {
			k.DefaultConfig = k.DefaultConfig.Clone()
			return k, nil
		}
	}
	return TransformationKind{}, errs.ErrInvalidTransformationType
}

// ParseTransformationType validates a raw type name
func ParseTransformationType(raw string) (TransformationType, error) {
	t := TransformationType(raw)
	if !t.IsValid() {
		return "", errs.ErrInvalidTransformationType
	}
	return t, nil
}

// IsValid reports whether the type belongs to the catalog
func (t TransformationType) IsValid() bool {
	_, err := LookupTransformation(t)
	return err == nil
}

// StagesOnUpload reports whether uploading an image is enough to stage the default config
func (t TransformationType) StagesOnUpload() bool {
	return t == TransformationRestore || t == TransformationRemoveBackground
}

// UsesPrompt reports whether the type is driven by free-text prompt and color fields
func (t TransformationType) UsesPrompt() bool {
	return t == TransformationRemove || t == TransformationRecolor
}

// AspectRatioOptions returns the fill presets in display order
func AspectRatioOptions() []AspectRatioOption {
	out := make([]AspectRatioOption, len(aspectRatioOptions))
	copy(out, aspectRatioOptions)
	return out
}

// LookupAspectRatio returns the preset for the given key
func LookupAspectRatio(key string) (AspectRatioOption, error) {
	for _, o := range aspectRatioOptions {
		if o.Key == key {
			return o, nil
		}
	}
	return AspectRatioOption{}, errs.ErrInvalidAspectRatio
}
