package classical_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/bdiallo/go-classical-ciphers/classical"
)

func newTestManager(t *testing.T) *classical.Manager {
	t.Helper()
	m := classical.NewManager()
	vig, err := classical.NewVigenere("LEMON")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Register(classical.NameCaesar, classical.NewCaesar(3)); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(classical.NameVigenere, vig); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestManager_RegisterValidation(t *testing.T) {
	m := classical.NewManager()
	if err := m.Register("", classical.NewCaesar(1)); !errors.Is(err, classical.ErrEmptyCipherName) {
		t.Fatalf("empty name: got %v, want ErrEmptyCipherName", err)
	}
	if err := m.Register(classical.NameCaesar, nil); !errors.Is(err, classical.ErrNilCipher) {
		t.Fatalf("nil cipher: got %v, want ErrNilCipher", err)
	}
}

func TestManager_DispatchesByName(t *testing.T) {
	m := newTestManager(t)

	ct, err := m.Encrypt(classical.NameCaesar, "BOUBACAR")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if ct != "ERXEDFDU" {
		t.Fatalf("Encrypt = %q, want ERXEDFDU", ct)
	}
	pt, err := m.Decrypt(classical.NameCaesar, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if pt != "BOUBACAR" {
		t.Fatalf("Decrypt = %q, want BOUBACAR", pt)
	}
}

func TestManager_UnknownCipher(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Encrypt("rot47", "X"); !errors.Is(err, classical.ErrCipherNotFound) {
		t.Fatalf("Encrypt: got %v, want ErrCipherNotFound", err)
	}
	if _, err := m.Cipher("rot47"); !errors.Is(err, classical.ErrCipherNotFound) {
		t.Fatalf("Cipher: got %v, want ErrCipherNotFound", err)
	}
	if m.Has("rot47") {
		t.Fatal("Has(rot47) = true for unregistered cipher")
	}
}

func TestManager_ReRegisterReplaces(t *testing.T) {
	m := newTestManager(t)
	if err := m.Register(classical.NameCaesar, classical.NewCaesar(13)); err != nil {
		t.Fatal(err)
	}
	got, _ := m.Encrypt(classical.NameCaesar, "A")
	if got != "N" {
		t.Fatalf("replaced driver not used: got %q, want N", got)
	}
}

func TestManager_Names(t *testing.T) {
	m := newTestManager(t)
	names := m.Names()
	if len(names) != 2 {
		t.Fatalf("Names() = %v, want 2 entries", names)
	}
	seen := map[classical.CipherName]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen[classical.NameCaesar] || !seen[classical.NameVigenere] {
		t.Fatalf("Names() = %v, missing registered ciphers", names)
	}
}

func TestManager_ConcurrentUse(t *testing.T) {
	m := newTestManager(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				_ = m.Register(classical.NameHill, mustHill())
			}
			ct, err := m.Encrypt(classical.NameVigenere, "ATTACKATDAWN")
			if err != nil {
				t.Errorf("Encrypt: %v", err)
				return
			}
			if ct != "LXFOPVEFRNHR" {
				t.Errorf("Encrypt = %q", ct)
			}
		}(i)
	}
	wg.Wait()
}

func mustHill() classical.Hill {
	c, err := classical.NewHill(hillKey)
	if err != nil {
		panic(err)
	}
	return c
}
