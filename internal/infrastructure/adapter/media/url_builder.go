package media

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
)

// transformationSteps derives the ordered delivery steps for a config.
// Each returned element becomes one path segment of the delivery URL.
func transformationSteps(width, height int, config entity.TransformationConfig) []string {
	var steps []string

	filling := config.Flag("fillBackground")
	if filling {
		steps = append(steps, fmt.Sprintf("b_gen_fill,c_pad,w_%d,h_%d", width, height))
	}

	if remove, ok := config.Section("remove"); ok {
		step := "e_gen_remove:prompt_" + escapeParam(stringValue(remove, "prompt"))
		if boolValue(remove, "multiple") {
			step += ";multiple_true"
		}
		if boolValue(remove, "removeShadow") {
			step += ";remove-shadow_true"
		}
		steps = append(steps, step)
	}

	if recolor, ok := config.Section("recolor"); ok {
		step := "e_gen_recolor:prompt_" + escapeParam(stringValue(recolor, "prompt")) +
			";to-color_" + escapeParam(stringValue(recolor, "to"))
		if boolValue(recolor, "multiple") {
			step += ";multiple_true"
		}
		steps = append(steps, step)
	}

	if config.Flag("restore") {
		steps = append(steps, "e_gen_restore")
	}

	if config.Flag("removeBackground") {
		steps = append(steps, "e_background_removal")
	}

	if !filling && width > 0 && height > 0 {
		steps = append(steps, fmt.Sprintf("c_limit,w_%d,h_%d", width, height))
	}

	return steps
}

// buildDeliveryURL joins the delivery host, cloud, steps and public id
func buildDeliveryURL(deliveryBaseURL, cloudName, publicID string, width, height int, config entity.TransformationConfig) (string, error) {
	if strings.TrimSpace(publicID) == "" {
		return "", errs.ErrInvalidRequest
	}

	parts := []string{strings.TrimRight(deliveryBaseURL, "/"), cloudName, "image", "upload"}
	parts = append(parts, transformationSteps(width, height, config)...)
	parts = append(parts, strings.TrimLeft(publicID, "/"))
	return strings.Join(parts, "/"), nil
}

func stringValue(section map[string]any, key string) string {
	s, _ := section[key].(string)
	return strings.TrimSpace(s)
}

func boolValue(section map[string]any, key string) bool {
	b, _ := section[key].(bool)
	return b
}

// escapeParam keeps prompt text from breaking the step syntax
func escapeParam(s string) string {
	return url.PathEscape(s)
}
