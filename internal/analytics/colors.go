package analytics

// ColorMap resolves a process status to a semantic color key for the
// rendering layer. Lookup is total: unrecognized statuses resolve to the
// fallback color instead of missing.
type ColorMap struct {
	statuses map[string]string
	fallback string
}

// DefaultFallbackColor is used when no fallback is configured.
const DefaultFallbackColor = "#9e9e9e"

// DefaultStatusColors is the built-in status palette; configuration may
// override or extend it.
func DefaultStatusColors() map[string]string {
	return map[string]string{
		"Draft":        "#90a4ae",
		"Published":    "#42a5f5",
		"In Review":    "#ffca28",
		"Under Review": "#ffca28",
		"Awarded":      "#66bb6a",
		"Completed":    "#2e7d32",
		"Cancelled":    "#ef5350",
		"On Hold":      "#ff7043",
	}
}

// NewColorMap builds a ColorMap from a status palette and fallback color.
// A nil palette uses the defaults; an empty fallback uses
// DefaultFallbackColor. The input map is copied.
func NewColorMap(statuses map[string]string, fallback string) ColorMap {
	if statuses == nil {
		statuses = DefaultStatusColors()
	}
	if fallback == "" {
		fallback = DefaultFallbackColor
	}

	copied := make(map[string]string, len(statuses))
	for k, v := range statuses {
		copied[k] = v
	}
	return ColorMap{statuses: copied, fallback: fallback}
}

// ColorFor returns the color for a status, falling back for unknown ones.
func (cm ColorMap) ColorFor(status string) string {
	if c, ok := cm.statuses[status]; ok {
		return c
	}
	return cm.fallback
}
