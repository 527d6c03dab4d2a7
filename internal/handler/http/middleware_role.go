package http

import (
	"context"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/utils"
	"github.com/MKhiriev/billiard-pos/models"
)

// authorize allows the request when the caller holds at least one of roles,
// or when roles is empty. A request without an identity is rejected as
// Unauthenticated, never allowed.
func authorize(ctx context.Context, roles []models.Role) error {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return app.Unauthenticated("")
	}

	if !identity.HasAnyRole(roles...) {
		logger.FromContext(ctx).Info().
			Str("subject", identity.Subject).
			Any("roles", identity.Roles).
			Any("required", roles).
			Msg("insufficient role")
		return app.Forbidden("")
	}
	return nil
}
