package adapter

import "context"

// IdentityService resolves a bearer token into a display name. Identity is a
// cosmetic collaborator: the name labels the UI and never influences ledger
// data.
type IdentityService interface {
	DisplayName(ctx context.Context, token string) (string, error)
}
