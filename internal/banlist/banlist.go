package banlist

import "sync"

// Registry is an add-only set of banned IP addresses held for the
// lifetime of the process. It is a fast-path cache in front of the
// persisted per-account ban flag and is deliberately not persisted.
type Registry struct {
	mu  sync.RWMutex
	ips map[string]struct{}
}

// creates an empty registry
func New() *Registry {
	return &Registry{
		ips: make(map[string]struct{}),
	}
}

// adds an IP to the registry. Idempotent; there is no removal path.
func (r *Registry) Add(ip string) {
	if ip == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ips[ip] = struct{}{}
}

// reports whether the IP has been banned in this process
func (r *Registry) Contains(ip string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, banned := r.ips[ip]
	return banned
}

// returns the number of banned IPs
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ips)
}
