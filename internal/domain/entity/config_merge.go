package entity

// TransformationConfig is the nested parameter object handed to the media service
type TransformationConfig map[string]any

// DeepMerge overlays delta on base and returns a new config.
// Keys present in both take the delta's value unless both sides are objects,
// in which case they are merged recursively. Neither input is modified.
func DeepMerge(delta, base TransformationConfig) TransformationConfig {
	out := base.Clone()
	if out == nil {
		out = TransformationConfig{}
	}
	for key, deltaValue := range delta {
		deltaMap, deltaIsMap := asMap(deltaValue)
		baseMap, baseIsMap := asMap(out[key])
		if deltaIsMap && baseIsMap {
			out[key] = map[string]any(DeepMerge(deltaMap, baseMap))
			continue
		}
		out[key] = cloneValue(deltaValue)
	}
	return out
}

// Clone returns a deep copy of the config
func (c TransformationConfig) Clone() TransformationConfig {
	if c == nil {
		return nil
	}
	out := make(TransformationConfig, len(c))
	for k, v := range c {
		out[k] = cloneValue(v)
	}
	return out
}

// Section returns the nested object stored under key, if any
func (c TransformationConfig) Section(key string) (map[string]any, bool) {
	m, ok := asMap(c[key])
	return m, ok
}

// Flag reports whether key holds boolean true
func (c TransformationConfig) Flag(key string) bool {
	b, ok := c[key].(bool)
	return ok && b
}

func asMap(v any) (TransformationConfig, bool) {
	switch m := v.(type) {
	case map[string]any:
		return TransformationConfig(m), true
	case TransformationConfig:
		return m, true
	default:
		return nil, false
	}
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(TransformationConfig(t).Clone())
	case TransformationConfig:
		return map[string]any(t.Clone())
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
