package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAdmin = models.User{UserID: 1, Login: "admin", Name: "Admin", Role: models.RoleAdmin, Active: true}

func findCookie(rr interface{ Result() *http.Response }, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin_API(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, svc := newTestHandler(t)
		token := tokenFor("1", models.RoleAdmin)
		svc.auth.EXPECT().Login(gomock.Any(), models.Credentials{Login: "admin", Password: "secret"}).Return(testAdmin, nil)
		svc.auth.EXPECT().CreateToken(gomock.Any(), testAdmin).Return(token, nil)

		rr := serve(h.Init(), testRequest{method: http.MethodPost, target: "/api/v1/auth/login", body: `{"login":" admin ","password":"secret"}`})

		require.Equal(t, http.StatusOK, rr.Code)
		var login models.LoginResponse
		assert.Equal(t, "Logged in", decodeData(t, rr, &login))
		assert.Equal(t, token.SignedString, login.Token)
		assert.Equal(t, token.Claims.ExpiresAt.Unix(), login.ExpiresAt)
		assert.Equal(t, "admin", login.User.Login)

		cookie := findCookie(rr, accessTokenCookie)
		require.NotNil(t, cookie)
		assert.Equal(t, token.SignedString, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
	})

	t.Run("wrong password", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

		rr := serve(h.Init(), testRequest{method: http.MethodPost, target: "/api/v1/auth/login", body: `{"login":"admin","password":"nope"}`})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, app.MsgInvalidLoginPassword, decodeEnvelope(t, rr).Message)
		assert.Nil(t, findCookie(rr, accessTokenCookie))
	})

	t.Run("missing fields", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h.Init(), testRequest{method: http.MethodPost, target: "/api/v1/auth/login", body: `{"login":""}`})

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, []string{"login", "password"}, violatedFields(decodeEnvelope(t, rr)))
	})

	t.Run("body is not an object", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h.Init(), testRequest{method: http.MethodPost, target: "/api/v1/auth/login", body: `["admin"]`})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidJSON, decodeEnvelope(t, rr).Message)
	})
}

func formRequest(target string, form url.Values) testRequest {
	return testRequest{
		method:  http.MethodPost,
		target:  target,
		body:    form.Encode(),
		headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	}
}

func TestLogin_Web(t *testing.T) {
	t.Run("form", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h.Init(), testRequest{method: http.MethodGet, target: "/login"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `action="/login"`)
	})

	t.Run("success redirects", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.auth.EXPECT().Login(gomock.Any(), models.Credentials{Login: "admin", Password: "secret"}).Return(testAdmin, nil)
		svc.auth.EXPECT().CreateToken(gomock.Any(), testAdmin).Return(tokenFor("1", models.RoleAdmin), nil)

		rr := serve(h.Init(), formRequest("/login", url.Values{"login": {"admin"}, "password": {"secret"}}))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/products", rr.Header().Get("Location"))
		require.NotNil(t, findCookie(rr, accessTokenCookie))
	})

	t.Run("wrong password renders the form again", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

		rr := serve(h.Init(), formRequest("/login", url.Values{"login": {"admin"}, "password": {"nope"}}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), app.MsgInvalidLoginPassword)
		assert.Contains(t, rr.Body.String(), `value="admin"`)
	})

	t.Run("empty form", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h.Init(), formRequest("/login", url.Values{"login": {""}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), app.MsgValidationFailed)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h.Init(), testRequest{method: http.MethodPost, target: "/logout"})

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		cookie := findCookie(rr, accessTokenCookie)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})
}

func TestProductsPage(t *testing.T) {
	t.Run("signed in with cookie", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.expectTokens()
		svc.product.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.ProductPage{
			Items: []models.Product{{ID: 3, Name: "Chalk <Blue>", Price: 450000, Tags: []string{"chalk", "blue"}, Active: true}},
			Total: 41,
			Page:  2,
			Limit: 20,
		}, nil)

		rr := serve(h.Init(), testRequest{
			method:  http.MethodGet,
			target:  "/products?page=2",
			headers: map[string]string{"Cookie": accessTokenCookie + "=" + staffToken},
		})

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Chalk &lt;Blue&gt;")
		assert.Contains(t, body, "450.000")
		assert.Contains(t, body, "chalk, blue")
		assert.Contains(t, body, "?page=1&amp;limit=20")
		assert.Contains(t, body, "?page=3&amp;limit=20")
		assert.Contains(t, body, "user2")
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(h.Init(), testRequest{method: http.MethodGet, target: "/products"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rr.Body.String(), app.MsgUnauthenticated)
	})

	t.Run("invalid query renders every violation", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.expectTokens()

		rr := serve(h.Init(), testRequest{
			method:  http.MethodGet,
			target:  "/products?limit=500&sort=random",
			headers: map[string]string{"Cookie": accessTokenCookie + "=" + adminToken},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "sort:")
		assert.Contains(t, rr.Body.String(), "limit:")
	})
}
