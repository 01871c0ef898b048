package config

import (
	"fmt"
	"sync"
)

// Registry holds named service configurations. A process typically registers
// its configurations once at startup and only reads afterwards; the empty
// name addresses the default service. Bill loading commonly uses a second
// named configuration with its own merchant credentials.
type Registry struct {
	mu       sync.RWMutex
	services map[string]*BillPayConfig
}

// NewRegistry creates an empty service registry
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]*BillPayConfig),
	}
}

// Configure registers a service configuration under name. An empty name
// registers the default service. Re-registering a name replaces the previous
// configuration.
func (r *Registry) Configure(name string, cfg *BillPayConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration for service %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[name] = cfg
	return nil
}

// Lookup returns the configuration registered under name, or an error if no
// such service was configured
func (r *Registry) Lookup(name string) (*BillPayConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.services[name]
	if !ok {
		if name == "" {
			return nil, fmt.Errorf("no default service configured")
		}
		return nil, fmt.Errorf("no service configured with name %q", name)
	}
	return cfg, nil
}
