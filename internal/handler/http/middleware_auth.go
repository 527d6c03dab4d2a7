package http

import (
	"net/http"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/utils"
)

// accessTokenCookie carries the JWT for browser sessions.
const accessTokenCookie = "access_token"

// authenticate verifies the caller credential and attaches the resulting
// identity to the request context.
//
// The credential is read from "Authorization: Bearer <token>" first and from
// the access token cookie otherwise. A missing, malformed, expired or
// otherwise invalid credential is reported as Unauthenticated; the
// verification error itself only reaches the log.
func (h *Handler) authenticate(r *http.Request) (*http.Request, error) {
	log := logger.FromRequest(r)

	tokenString, err := credentialFromRequest(r)
	if err != nil {
		log.Debug().Err(err).Msg("request without usable credential")
		return r, app.Wrap(app.KindUnauthenticated, app.MsgUnauthenticated, err)
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		log.Info().Err(err).Msg("credential rejected")
		return r, app.Wrap(app.KindUnauthenticated, app.MsgInvalidToken, err)
	}

	identity := token.Identity()
	ctx := r.Context()
	rc, ok := utils.GetRequestContext(ctx)
	if !ok {
		return r, app.Internal(ErrNoRequestContext)
	}
	rc.Identity = &identity
	rc.Locals["user"] = identity

	return r.WithContext(ctx), nil
}

func credentialFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return utils.ParseBearerToken(header)
	}
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return "", ErrNoCredentials
}
