package types

// ComponentMap maps a component name to its generated source text.
type ComponentMap map[string]string

// ComponentResultKind tags how a ComponentResult was obtained.
type ComponentResultKind int

const (
	// ComponentsParsed means the model output was parsed into a component map.
	ComponentsParsed ComponentResultKind = iota
	// ComponentsFallback means the model output was unusable and the built-in
	// Header/Footer components were substituted.
	ComponentsFallback
)

func (k ComponentResultKind) String() string {
	switch k {
	case ComponentsParsed:
		return "parsed"
	case ComponentsFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// ComponentResult is the outcome of interpreting the component-map response.
type ComponentResult struct {
	Kind       ComponentResultKind
	Components ComponentMap
}

// GeneratedProject describes a project materialized on disk.
type GeneratedProject struct {
	Name         string   `json:"project_name"`
	Path         string   `json:"project_path"`
	Components   []string `json:"components"`
	UsedFallback bool     `json:"used_fallback"`
}
