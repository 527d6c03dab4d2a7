package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/utils"
	"github.com/MKhiriev/billiard-pos/internal/validators"
	"github.com/MKhiriev/billiard-pos/models"
)

// signIn checks credentials and issues a token for the account.
func (h *Handler) signIn(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Info().Err(err).Str("login", credentials.Login).Msg("sign in rejected")
		return models.User{}, models.Token{}, err
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("creation of token failed")
		return models.User{}, models.Token{}, err
	}

	log.Info().Int64("id", user.UserID).Msg("user signed in")
	return user, token, nil
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	credentials := validators.CredentialsFromValues(valuesFrom(r))

	user, token, err := h.signIn(r.Context(), credentials)
	if err != nil {
		return err
	}

	h.setTokenCookie(w, token)
	return writeOK(w, r, "Logged in", models.LoginResponse{
		Token:     token.SignedString,
		ExpiresAt: tokenExpiry(token).Unix(),
		User:      user,
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return ErrNoCredentials
	}
	return writeOK(w, r, "Current user", identity)
}

func (h *Handler) setTokenCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  tokenExpiry(token),
		HttpOnly: true,
		Secure:   !h.options.Development,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func tokenExpiry(token models.Token) time.Time {
	if token.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return token.Claims.ExpiresAt.Time
}
