package auth

import (
	"slices"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

// RequireRole is the single role-gating predicate used by every protected
// handler. It returns common.ErrorForbidden unless the principal's role is
// one of allowed.
func RequireRole(p *Principal, allowed ...models.Role) error {
	if p == nil {
		return common.ErrorUnauthorized
	}
	if slices.Contains(allowed, p.Role) {
		return nil
	}
	return common.ErrorForbidden
}

// IsOwner reports whether the principal owns the resource identified by
// ownerID.
func IsOwner(p *Principal, ownerID string) bool {
	return p != nil && p.UserID == ownerID
}
