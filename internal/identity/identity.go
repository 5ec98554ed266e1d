// Package identity mints the ephemeral per-run user identity.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// Identity is the (userId, username) pair that tags outgoing messages and
// distinguishes own from other messages. Generated once per run, never
// persisted.
type Identity struct {
	UserID   string
	Username string
}

// New returns a random identity. The suffixes come from a fresh UUID so two
// runs never collide in practice.
func New() Identity {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return Identity{
		UserID:   "user_" + raw[:9],
		Username: "User_" + raw[9:14],
	}
}
