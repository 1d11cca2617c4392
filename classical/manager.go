package classical

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe registry and dispatcher of named [Cipher]
// instances. It lets an embedding application (a CLI, an HTTP handler, a
// test harness) select a configured cipher by name without depending on the
// concrete types.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises Register while allowing concurrent lookups and
// transforms.
type Manager struct {
	mu      sync.RWMutex
	ciphers map[CipherName]Cipher
}

// NewManager creates an empty Manager. Ciphers must be registered with
// [Manager.Register] before any transform is dispatched through it.
func NewManager() *Manager {
	return &Manager{ciphers: make(map[CipherName]Cipher)}
}

// Register adds or replaces a cipher instance under name. Registering a
// different instance under an existing name replaces the previous one.
//
// Custom cipher families only need to implement the [Cipher] interface:
//
//	m.Register("rot13", classical.NewCaesar(13))
func (m *Manager) Register(name CipherName, c Cipher) error {
	if name == "" {
		return ErrEmptyCipherName
	}
	if c == nil {
		return ErrNilCipher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ciphers[name] = c
	return nil
}

// Cipher returns the instance registered under name, or [ErrCipherNotFound]
// if no such cipher has been registered.
func (m *Manager) Cipher(name CipherName) (Cipher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.ciphers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCipherNotFound, name)
	}
	return c, nil
}

// Has reports whether a cipher with the given name is registered.
func (m *Manager) Has(name CipherName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.ciphers[name]
	return ok
}

// Names returns the registered cipher names in unspecified order.
func (m *Manager) Names() []CipherName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]CipherName, 0, len(m.ciphers))
	for name := range m.ciphers {
		names = append(names, name)
	}
	return names
}

// Encrypt dispatches plaintext to the cipher registered under name.
func (m *Manager) Encrypt(name CipherName, plaintext string) (string, error) {
	c, err := m.Cipher(name)
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext)
}

// Decrypt dispatches ciphertext to the cipher registered under name.
func (m *Manager) Decrypt(name CipherName, ciphertext string) (string, error) {
	c, err := m.Cipher(name)
	if err != nil {
		return "", err
	}
	return c.Decrypt(ciphertext)
}
