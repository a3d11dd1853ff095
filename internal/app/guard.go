package app

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"

	"dutyroster/internal/domain"
)

// Guard decides whether a caller may run mutating commands.
type Guard struct {
	admins []int64
	hash   []byte
}

// NewGuard builds a Guard from the admin list and an optional bcrypt hash.
func NewGuard(admins []int64, passphraseHash string) *Guard {
	g := &Guard{admins: slices.Clone(admins)}
	if passphraseHash != "" {
		g.hash = []byte(passphraseHash)
	}
	return g
}

// Open reports whether the guard trusts every local caller.
func (g *Guard) Open() bool { return len(g.admins) == 0 && g.hash == nil }

// Check returns ErrForbidden unless caller is an admin and, when a hash is
// configured, passphrase matches it.
func (g *Guard) Check(caller int64, passphrase string) error {
	if g.Open() {
		return nil
	}
	if len(g.admins) > 0 && !slices.Contains(g.admins, caller) {
		return fmt.Errorf("%w: id %d is not an admin", domain.ErrForbidden, caller)
	}
	if g.hash != nil {
		if passphrase == "" {
			return fmt.Errorf("%w: passphrase required (-p)", domain.ErrForbidden)
		}
		if err := bcrypt.CompareHashAndPassword(g.hash, []byte(passphrase)); err != nil {
			return fmt.Errorf("%w: wrong passphrase", domain.ErrForbidden)
		}
	}
	return nil
}

// HashPassphrase returns a bcrypt hash suitable for admin_passphrase_hash.
func HashPassphrase(passphrase string) (string, error) {
	if passphrase == "" {
		return "", fmt.Errorf("passphrase must not be empty")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
