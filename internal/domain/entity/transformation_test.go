package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTransformation(t *testing.T) {
	kind, err := LookupTransformation(TransformationRemove)
	require.NoError(t, err)
	assert.Equal(t, "remove", kind.ConfigKey)
	assert.Equal(t, TransformationConfig{"remove": map[string]any{
		"prompt":       "",
		"removeShadow": true,
		"multiple":     true,
	}}, kind.DefaultConfig)

	_, err = LookupTransformation("sharpen")
	assert.ErrorIs(t, err, errs.ErrInvalidTransformationType)
}

func TestLookupTransformation_ReturnsCopy(t *testing.T) {
	kind, err := LookupTransformation(TransformationRecolor)
	require.NoError(t, err)
	section, _ := kind.DefaultConfig.Section("recolor")
	section["to"] = "red"

	again, err := LookupTransformation(TransformationRecolor)
	require.NoError(t, err)
	fresh, _ := again.DefaultConfig.Section("recolor")
	assert.Equal(t, "", fresh["to"])
}

func TestParseTransformationType(t *testing.T) {
	for _, raw := range []string{"restore", "removeBackground", "fill", "remove", "recolor"} {
		parsed, err := ParseTransformationType(raw)
		require.NoError(t, err)
		assert.Equal(t, TransformationType(raw), parsed)
	}

	_, err := ParseTransformationType("blur")
	assert.ErrorIs(t, err, errs.ErrInvalidTransformationType)
}

func TestTransformationType_Traits(t *testing.T) {
	assert.True(t, TransformationRestore.StagesOnUpload())
	assert.True(t, TransformationRemoveBackground.StagesOnUpload())
	assert.False(t, TransformationFill.StagesOnUpload())
	assert.True(t, TransformationRemove.UsesPrompt())
	assert.True(t, TransformationRecolor.UsesPrompt())
	assert.False(t, TransformationFill.UsesPrompt())
}

func TestLookupAspectRatio(t *testing.T) {
	option, err := LookupAspectRatio("3:4")
	require.NoError(t, err)
	assert.Equal(t, 1000, option.Width)
	assert.Equal(t, 1334, option.Height)

	_, err = LookupAspectRatio("4:3")
	assert.ErrorIs(t, err, errs.ErrInvalidAspectRatio)

	assert.Len(t, AspectRatioOptions(), 3)
	assert.Len(t, TransformationKinds(), 5)
}
