package flex

// Config holds settings shared by all nodes of a tree.
type Config struct {
	// PointScaleFactor is the number of physical pixels per layout pixel.
	// Layout results are rounded to this grid; 0 disables rounding.
	PointScaleFactor float32
	// UseWebDefaults switches to the defaults of CSS: flex-direction row,
	// align-content stretch and flex-shrink 1.
	UseWebDefaults bool
	// UseLegacyStretchBehaviour lets a container with a flexible child
	// take its whole available main size, as older Yoga versions did.
	UseLegacyStretchBehaviour bool
	// PrintTree traces every internal layout call at Debug level.
	PrintTree bool

	experimentalFeatures [experimentalFeatureCount]bool
}

// NewConfig creates a configuration with default values.
func NewConfig() *Config {
	return &Config{
		PointScaleFactor: 1,
	}
}

// SetPointScaleFactor sets the pixel grid used for rounding. Negative
// values are ignored.
func (config *Config) SetPointScaleFactor(pixelsInPoint float32) {
	if pixelsInPoint < 0 {
		tracer().Errorf("scale factor should not be less than zero, ignoring %g", pixelsInPoint)
		return
	}
	config.PointScaleFactor = pixelsInPoint
}

// SetExperimentalFeatureEnabled switches an experimental feature on or off.
func (config *Config) SetExperimentalFeatureEnabled(feature ExperimentalFeature, enabled bool) {
	if feature < 0 || feature >= experimentalFeatureCount {
		return
	}
	config.experimentalFeatures[feature] = enabled
}

// IsExperimentalFeatureEnabled returns the state of an experimental feature.
func (config *Config) IsExperimentalFeatureEnabled(feature ExperimentalFeature) bool {
	if feature < 0 || feature >= experimentalFeatureCount {
		return false
	}
	return config.experimentalFeatures[feature]
}
