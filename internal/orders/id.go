package orders

import "github.com/google/uuid"

// NewID returns a random order identifier. The original app minted a short
// random token on first save; a v4 UUID keeps the same no-central-authority
// design with a collision probability that stays negligible at any volume a
// personal ledger can reach.
func NewID() string {
	return uuid.NewString()
}
