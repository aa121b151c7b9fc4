// file: controllers/controllers_test.go
package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"xtrnia/apperr"
	"xtrnia/assets"
	"xtrnia/auth"
	"xtrnia/logger"
	"xtrnia/metrics"
	"xtrnia/middleware"
	"xtrnia/models"
	"xtrnia/services"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) middleware.Envelope {
	t.Helper()
	var env middleware.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// withClaims stands in for AdminRequired.
func withClaims(id, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &auth.Claims{ID: id, Username: username})
		c.Next()
	}
}

func TestLogin_InvalidCredentialsCountsFailure(t *testing.T) {
	admins := new(MockAdminService)
	pub := new(metrics.MockPublisher)
	tokens, err := auth.NewTokenManager("controller-secret", time.Hour)
	require.NoError(t, err)
	ac := NewAuthController(admins, tokens, pub, false)

	admins.On("Authenticate", mock.Anything, "root", "bad").
		Return(nil, apperr.New(apperr.InvalidCredentials, "Invalid username or password")).Once()
	pub.On("LoginFailed").Once()

	router := gin.New()
	router.POST("/auth/login", ac.Login)
	w := perform(router, http.MethodPost, "/auth/login", `{"username":"root","password":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
	admins.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestLogin_SecureCookie(t *testing.T) {
	admins := new(MockAdminService)
	tokens, err := auth.NewTokenManager("controller-secret", time.Hour)
	require.NoError(t, err)
	ac := NewAuthController(admins, tokens, nil, true)

	admins.On("Authenticate", mock.Anything, "root", "good-pass").
		Return(&models.Admin{ID: "admin-1", Username: "root"}, nil).Once()

	router := gin.New()
	router.POST("/auth/login", ac.Login)
	w := perform(router, http.MethodPost, "/auth/login", `{"username":"root","password":"good-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].Secure)
	assert.InDelta(t, time.Hour.Seconds(), float64(cookies[0].MaxAge), 5)

	claims, err := tokens.Verify(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.ID)
}

func TestLogin_BadBody(t *testing.T) {
	ac := NewAuthController(new(MockAdminService), nil, nil, false)
	router := gin.New()
	router.POST("/auth/login", ac.Login)

	w := perform(router, http.MethodPost, "/auth/login", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeEnvelope(t, w).Message)
}

func TestAdminInfo_UsesClaims(t *testing.T) {
	admins := new(MockAdminService)
	admins.On("Get", mock.Anything, "admin-1").Return(&models.Admin{ID: "admin-1", Username: "root", PasswordHash: "secret-hash"}, nil).Once()
	ac := NewAdminController(admins)

	router := gin.New()
	router.GET("/admin/info", withClaims("admin-1", "root"), ac.Info)
	w := perform(router, http.MethodGet, "/admin/info", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-hash")
	admins.AssertExpectations(t)
}

func TestAdminInfo_WithoutClaims(t *testing.T) {
	ac := NewAdminController(new(MockAdminService))
	router := gin.New()
	router.GET("/admin/info", ac.Info)

	w := perform(router, http.MethodGet, "/admin/info", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCompetitionList_PassesFilters(t *testing.T) {
	svc := new(MockCompetitionService)
	svc.On("List", mock.Anything, services.CompetitionFilter{Type: "upcoming", Status: "active"}).
		Return([]models.Competition{{ID: "c1", Name: "Quiz"}}, nil).Once()
	cc := NewCompetitionController(svc)

	router := gin.New()
	router.GET("/competitions", cc.List)
	w := perform(router, http.MethodGet, "/competitions?type=upcoming&status=active", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
	svc.AssertExpectations(t)
}

func TestCompetitionToggle_Message(t *testing.T) {
	svc := new(MockCompetitionService)
	svc.On("ToggleType", mock.Anything, "c1").
		Return(&models.Competition{ID: "c1", Type: models.CompetitionCurrent}, services.MsgCompetitionCurrent, nil).Once()
	cc := NewCompetitionController(svc)

	router := gin.New()
	router.PATCH("/competitions/:id/toggle-type", cc.ToggleType)
	w := perform(router, http.MethodPatch, "/competitions/c1/toggle-type", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.MsgCompetitionCurrent, decodeEnvelope(t, w).Message)
}

func TestCompetitionDelete_NotFound(t *testing.T) {
	svc := new(MockCompetitionService)
	svc.On("Delete", mock.Anything, "missing").Return(apperr.NotFoundf("Competition")).Once()
	cc := NewCompetitionController(svc)

	router := gin.New()
	router.DELETE("/competitions/:id", cc.Delete)
	w := perform(router, http.MethodDelete, "/competitions/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Competition not found", decodeEnvelope(t, w).Message)
}

func TestContactSubmit_UnexpectedErrorIsHidden(t *testing.T) {
	svc := new(MockContactService)
	svc.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("disk full at /var/lib/db")).Once()
	cc := NewContactController(svc)

	router := gin.New()
	router.POST("/contact", cc.Submit)
	w := perform(router, http.MethodPost, "/contact", `{"name":"a","phone":"9876543210","email":"a@b.co","message":"m"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to submit form. Please try again later.", decodeEnvelope(t, w).Message)
}

func TestBrochureActive_PublicFieldsOnly(t *testing.T) {
	svc := new(MockBrochureService)
	svc.On("Active", mock.Anything).Return(&models.Brochure{
		ID: "b1", Name: "Spring", FileURL: "https://cdn.example.com/s.pdf", PublicID: "secret/key", IsActive: true,
	}, nil).Once()
	bc := NewBrochureController(svc)

	router := gin.New()
	router.GET("/brochures/active", bc.Active)
	w := perform(router, http.MethodGet, "/brochures/active", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret/key")
}

func TestBrochureUpdate_PassesOptionalFields(t *testing.T) {
	svc := new(MockBrochureService)
	active := true
	svc.On("Update", mock.Anything, "b1", services.BrochureUpdate{IsActive: &active}).
		Return(&models.Brochure{ID: "b1", IsActive: true}, nil).Once()
	bc := NewBrochureController(svc)

	router := gin.New()
	router.PUT("/brochures/:id", bc.Update)
	w := perform(router, http.MethodPut, "/brochures/b1", `{"isActive":true}`)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpload_MissingFile(t *testing.T) {
	svc := new(MockUploadService)
	uc := NewUploadController(svc)

	router := gin.New()
	router.POST("/upload", uc.Image)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())
	req, _ := http.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decodeEnvelope(t, w).Message)
	svc.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload_ForwardsFileMetadata(t *testing.T) {
	svc := new(MockUploadService)
	svc.On("Accept", mock.Anything, assets.KindPDF, mock.MatchedBy(func(f services.UploadFile) bool {
		return f.Filename == "guide.pdf" && f.ContentType == "application/pdf" && f.Size == 9
	})).Return(&assets.Asset{URL: "https://cdn.example.com/g.pdf", ExternalID: "g", Size: 9}, nil).Once()
	uc := NewUploadController(svc)

	router := gin.New()
	router.POST("/brochures/upload", uc.Brochure)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="guide.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4\n"))
	require.NoError(t, mw.Close())
	req, _ := http.NewRequest(http.MethodPost, "/brochures/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Brochure uploaded successfully", decodeEnvelope(t, w).Message)
	svc.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	pc := NewPageController(new(MockBrochureService), func(context.Context) error { return nil })
	router := gin.New()
	router.GET("/health", pc.Health)
	assert.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/health", "").Code)

	pc.Ping = func(context.Context) error { return errors.New("db down") }
	assert.Equal(t, http.StatusServiceUnavailable, perform(router, http.MethodGet, "/health", "").Code)
}

func TestBrochureQRCode(t *testing.T) {
	svc := new(MockBrochureService)
	svc.On("Active", mock.Anything).Return(&models.Brochure{FileURL: "https://cdn.example.com/s.pdf"}, nil)
	pc := NewPageController(svc, nil)

	var gotContent string
	var gotSize int
	pc.Encoder = func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
		gotContent, gotSize = content, size
		return []byte("png-bytes"), nil
	}

	router := gin.New()
	router.GET("/qrcode", pc.BrochureQRCode)

	w := perform(router, http.MethodGet, "/qrcode", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
	assert.Equal(t, "https://cdn.example.com/s.pdf", gotContent)
	assert.Equal(t, services.DefaultQRSize, gotSize)

	w = perform(router, http.MethodGet, "/qrcode?size=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
