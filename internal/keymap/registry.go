package keymap

import "sort"

// Registry resolves keys to commands, with user overrides taking
// precedence over defaults.
type Registry struct {
	defaults  map[string]string
	overrides map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
}

// RegisterDefaults loads DefaultBindings into r.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.Register(b)
	}
}

// Register adds a default binding.
func (r *Registry) Register(b Binding) {
	r.defaults[b.Key] = b.Command
}

// SetUserOverride binds key to cmd, replacing any default. An empty cmd
// unbinds the key.
func (r *Registry) SetUserOverride(key, cmd string) {
	r.overrides[key] = cmd
}

// ResetOverrides drops every user override, restoring the defaults.
func (r *Registry) ResetOverrides() {
	r.overrides = make(map[string]string)
}

// Lookup returns the command bound to key.
func (r *Registry) Lookup(key string) (string, bool) {
	if cmd, ok := r.overrides[key]; ok {
		return cmd, cmd != ""
	}
	cmd, ok := r.defaults[key]
	return cmd, ok
}

// KeysFor returns every key bound to cmd, sorted.
func (r *Registry) KeysFor(cmd string) []string {
	var keys []string
	seen := make(map[string]bool)
	for key, c := range r.overrides {
		seen[key] = true
		if c == cmd {
			keys = append(keys, key)
		}
	}
	for key, c := range r.defaults {
		if !seen[key] && c == cmd {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
