package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"bloghub/internal/middleware"
	"bloghub/internal/models"
	"bloghub/internal/storage"
	"bloghub/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

// stub services: поле-функция на метод, nil значит "не ожидали вызова"

type stubUsers struct {
	register func(models.RegisterRequest, *storage.Object) (*models.User, error)
	verify   func(string, int) (*models.User, error)
	resend   func(string) error
	login    func(string, string) (string, *models.User, error)
}

func (s *stubUsers) Register(_ context.Context, req models.RegisterRequest, img *storage.Object) (*models.User, error) {
	return s.register(req, img)
}
func (s *stubUsers) VerifyAccount(_ context.Context, email string, otp int) (*models.User, error) {
	return s.verify(email, otp)
}
func (s *stubUsers) ResendVerification(_ context.Context, email string) error { return s.resend(email) }
func (s *stubUsers) Login(_ context.Context, email, pw string) (string, *models.User, error) {
	return s.login(email, pw)
}
func (s *stubUsers) GetUser(context.Context, int64) (*models.User, error) { return nil, nil }

type stubTwoFactor struct {
	err error
	got []string
}

func (s *stubTwoFactor) Enable(context.Context, int64) error {
	s.got = append(s.got, "enable")
	return s.err
}
func (s *stubTwoFactor) Disable(context.Context, int64) error {
	s.got = append(s.got, "disable")
	return s.err
}
func (s *stubTwoFactor) AddEmail(_ context.Context, _ int64, email string) error {
	s.got = append(s.got, "add:"+email)
	return s.err
}
func (s *stubTwoFactor) VerifyEmail(_ context.Context, _ int64, email string, _ int) error {
	s.got = append(s.got, "verify:"+email)
	return s.err
}

type stubReset struct {
	requested []int64
	resetErr  error
}

func (s *stubReset) RequestReset(_ context.Context, id int64) error {
	s.requested = append(s.requested, id)
	return nil
}
func (s *stubReset) ResetPassword(context.Context, int64, int, string) error { return s.resetErr }

type stubPosts struct {
	create func(int64, models.PostRequest, *storage.Object) (*models.Post, error)
	list   func(int, int) ([]models.Post, error)
	get    func(int64) (*models.Post, error)
	update func(int64, int64, models.PostRequest) (*models.Post, error)
	remove func(int64, int64) error
}

func (s *stubPosts) Create(_ context.Context, uid int64, req models.PostRequest, img *storage.Object) (*models.Post, error) {
	return s.create(uid, req, img)
}
func (s *stubPosts) List(_ context.Context, page, limit int) ([]models.Post, error) {
	return s.list(page, limit)
}
func (s *stubPosts) Get(_ context.Context, id int64) (*models.Post, error) { return s.get(id) }
func (s *stubPosts) Update(_ context.Context, uid, id int64, req models.PostRequest) (*models.Post, error) {
	return s.update(uid, id, req)
}
func (s *stubPosts) Delete(_ context.Context, uid, id int64) error { return s.remove(uid, id) }

type stubComments struct {
	list   func(int64) ([]models.Comment, error)
	create func(int64, int64, string) (*models.Comment, error)
	err    error
}

func (s *stubComments) List(_ context.Context, postID int64) ([]models.Comment, error) {
	return s.list(postID)
}
func (s *stubComments) Create(_ context.Context, uid, postID int64, text string) (*models.Comment, error) {
	return s.create(uid, postID, text)
}
func (s *stubComments) Update(context.Context, int64, int64, string) (*models.Comment, error) {
	return nil, s.err
}
func (s *stubComments) Delete(context.Context, int64, int64) error { return s.err }

type stubProfile struct {
	addLink func(int64, models.SocialMediaLinkRequest) (*models.SocialMediaLink, error)
	cover   func(int64, storage.Object) (*models.User, error)
	report  func(io.Writer) error
}

func (s *stubProfile) Profile(_ context.Context, id int64) (*models.User, error) {
	return &models.User{ID: id, Name: "Alice Smith"}, nil
}
func (s *stubProfile) ListLinks(context.Context, int64) ([]models.SocialMediaLink, error) {
	return nil, nil
}
func (s *stubProfile) AddLink(_ context.Context, id int64, req models.SocialMediaLinkRequest) (*models.SocialMediaLink, error) {
	return s.addLink(id, req)
}
func (s *stubProfile) UpdateCoverImage(_ context.Context, id int64, img storage.Object) (*models.User, error) {
	return s.cover(id, img)
}
func (s *stubProfile) Activity(context.Context, int64) ([]models.ActivityLog, error) { return nil, nil }
func (s *stubProfile) ActivityReport(_ context.Context, _ int64, w io.Writer) error {
	return s.report(w)
}

// ===== helpers =====

var testIssuer = utils.NewTokenIssuer("handler-secret", time.Hour)

func nullLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func bearer(t *testing.T, id int64) string {
	t.Helper()
	token, err := testIssuer.Issue(id, "Alice Smith", "alice@example.com", true)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

type filePart struct {
	field       string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, file *filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="img"`)
		h.Set("Content-Type", file.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func authed() gin.HandlerFunc { return middleware.AuthMiddleware(testIssuer) }
