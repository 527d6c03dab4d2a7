package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/mock"
	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	adminToken = "admin-token"
	staffToken = "staff-token"
)

type testServices struct {
	auth    *mock.MockAuthService
	product *mock.MockProductService
	upload  *mock.MockUploadService
	backup  *mock.MockBackupService
	info    *mock.MockAppInfoService
}

func (s testServices) services() *service.Services {
	return &service.Services{
		AuthService:    s.auth,
		ProductService: s.product,
		UploadService:  s.upload,
		BackupService:  s.backup,
		AppInfoService: s.info,
	}
}

// expectTokens makes the auth service accept adminToken and staffToken and
// reject every other credential.
func (s testServices) expectTokens() {
	s.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token string) (models.Token, error) {
			switch token {
			case adminToken:
				return tokenFor("1", models.RoleAdmin), nil
			case staffToken:
				return tokenFor("2", models.RoleStaff), nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}).AnyTimes()
}

func tokenFor(subject string, roles ...models.Role) models.Token {
	return models.Token{
		SignedString: "signed-" + subject,
		Claims: models.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   subject,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Login: "user" + subject,
			Roles: roles,
		},
	}
}

func mustFeatures(t *testing.T, names ...string) config.FeatureSet {
	t.Helper()
	set, err := config.ParseFeatures(names)
	require.NoError(t, err)
	return set
}

func testOptions(t *testing.T) Options {
	return Options{
		AppName:        "Billiard POS",
		Version:        "1.2.3",
		Features:       mustFeatures(t, config.FeatureWeb, config.FeatureAPI, config.FeatureSecurityHeaders),
		RequestTimeout: 5 * time.Second,
		BodyLimit:      1 << 20,
		TrustProxy:     1,
		UploadsDir:     t.TempDir(),
		UploadMaxSize:  1 << 20,
	}
}

func newTestHandler(t *testing.T, mutate ...func(*Options)) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		product: mock.NewMockProductService(ctrl),
		upload:  mock.NewMockUploadService(ctrl),
		backup:  mock.NewMockBackupService(ctrl),
		info:    mock.NewMockAppInfoService(ctrl),
	}

	options := testOptions(t)
	for _, m := range mutate {
		m(&options)
	}

	h, err := NewHandler(svc.services(), options, logger.Nop())
	require.NoError(t, err)
	return h, svc
}

type testRequest struct {
	method  string
	target  string
	body    string
	token   string
	headers map[string]string
}

func serve(router http.Handler, tr testRequest) *httptest.ResponseRecorder {
	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.target, body)
	if tr.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tr.token != "" {
		req.Header.Set("Authorization", "Bearer "+tr.token)
	}
	for k, v := range tr.headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorEnvelope {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var envelope models.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}

// decodeData decodes a success envelope and its data member into out.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, out any) string {
	t.Helper()

	var resp struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, rr.Code, resp.Status)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp.Message
}

func violatedFields(envelope models.ErrorEnvelope) []string {
	fields := make([]string, 0, len(envelope.Errors))
	for _, v := range envelope.Errors {
		fields = append(fields, v.Field)
	}
	return fields
}
