// Package credential stores the remembered login username in the system
// keyring so the login screen can prefill it. Passwords are never stored.
package credential

import (
	"fmt"

	"github.com/99designs/keyring"
)

const (
	serviceName = "communitydesk"

	// lastUsernameKey is the keyring entry holding the most recently
	// used login username.
	lastUsernameKey = "last-username"
)

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/communitydesk/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("communitydesk-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// RememberedUsername returns the stored login username, or "" when none
// is stored or the keyring is unavailable.
func RememberedUsername() string {
	ring, err := openKeyring()
	if err != nil {
		return ""
	}
	item, err := ring.Get(lastUsernameKey)
	if err != nil {
		return ""
	}
	return string(item.Data)
}

// RememberUsername stores the login username for the next session.
func RememberUsername(username string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}
	err = ring.Set(keyring.Item{
		Key:  lastUsernameKey,
		Data: []byte(username),
	})
	if err != nil {
		return fmt.Errorf("storing remembered username: %w", err)
	}
	return nil
}

// ForgetUsername removes the stored login username, if any.
func ForgetUsername() error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}
	if err := ring.Remove(lastUsernameKey); err != nil {
		return fmt.Errorf("removing remembered username: %w", err)
	}
	return nil
}
