package hashing

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher for password hashing.
//
// The built-in bcrypt driver is the usual default. Other [Hasher]
// implementations, typically wrappers around a legacy scheme being migrated
// away from, can be registered next to it; [Manager.CheckWithDetect] then
// verifies either kind and [Manager.NeedsRehash] flags every hash not
// produced by the default driver with its current configuration.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver) while
// allowing concurrent reads (Make, Check, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any
// hashing operation is invoked through the Manager.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with the bcrypt driver registered at
// [DefaultBcryptOptions] and selected as the default.
//
//	m, err := hashing.NewDefaultManager()
//	hash, _ := m.Make("secret")
func NewDefaultManager() (*Manager, error) {
	h, err := NewBcryptHasher(DefaultBcryptOptions())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default bcrypt hasher: %w", err)
	}
	m := NewManager(DriverBcrypt)
	_ = m.RegisterDriver(DriverBcrypt, h)
	return m, nil
}

// RegisterDriver adds or replaces a named hasher in the Manager.
// It is safe to call RegisterDriver while other goroutines are using the Manager.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Make], [Manager.Check],
// and [Manager.NeedsRehash]. The named driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Make hashes password using the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash using the default driver.
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password against hash with whichever registered
// driver produced it. This is what a login flow calls while bcrypt hashes and
// hashes from a legacy driver coexist.
//
// Returns [ErrDriverNotFound] if the hash is bcrypt but no bcrypt driver is
// registered, and [ErrInvalidHash] if no registered driver recognises it.
func (m *Manager) CheckWithDetect(password, hash string) (bool, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be re-hashed with the default
// driver. It is true when another driver produced the hash, and otherwise
// defers to the default driver's own NeedsRehash (bcrypt: cost or version
// tag differs).
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, err := m.detect(hash)
	if err != nil {
		return false, err
	}
	if detected != m.DefaultDriver() {
		return true, nil
	}
	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// Info extracts metadata from hash using the default driver.
func (m *Manager) Info(hash string) (HashInfo, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// InfoWithDetect extracts metadata from hash with whichever registered
// driver produced it.
func (m *Manager) InfoWithDetect(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, err := m.detect(hash)
	if err != nil {
		return nil, err
	}
	return m.Driver(name)
}

// detect names the driver that produced hash. bcrypt prefixes are recognised
// directly; any other hash is offered to the remaining drivers in name order
// and claimed by the first whose Info accepts it.
func (m *Manager) detect(hash string) (DriverName, error) {
	if name, ok := DetectDriver(hash); ok {
		return name, nil
	}

	type candidate struct {
		name DriverName
		h    Hasher
	}
	m.mu.RLock()
	candidates := make([]candidate, 0, len(m.drivers))
	for name, h := range m.drivers {
		if name != DriverBcrypt {
			candidates = append(candidates, candidate{name, h})
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(candidates, func(a, b candidate) int { return strings.Compare(string(a.name), string(b.name)) })
	for _, c := range candidates {
		if _, err := c.h.Info(hash); err == nil {
			return c.name, nil
		}
	}
	return "", fmt.Errorf("%w: no registered driver recognises the hash", ErrInvalidHash)
}
