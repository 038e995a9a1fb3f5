package strategies

// Registry of strategies by test-type slug (e.g. "vark"). Populated from
// init() in instrument subpackages; read-only after startup.
var registry = map[string]Strategy{}

// Register binds a strategy to its slug. Call from init() in subpackages.
func Register(s Strategy) { registry[s.Slug()] = s }

// Lookup returns the registered strategy for a slug.
func Lookup(slug string) (Strategy, bool) { s, ok := registry[slug]; return s, ok }

// Slugs lists every registered test-type slug.
func Slugs() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}
