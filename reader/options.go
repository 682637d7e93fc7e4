package reader

// Option configures a Reader at construction time.
type Option func(*config)

type config struct {
	typesPath string
}

// WithTypesPath loads the feature type dictionary (types.txt) from path
// so IterFeatures can resolve a feature's numeric type ids to names.
// Without it, each type is reported as the decimal string of its id plus
// one.
func WithTypesPath(path string) Option {
	return func(c *config) { c.typesPath = path }
}
