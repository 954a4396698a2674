package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/crypto/bcrypt"

	"bloghub/internal/models"
	"bloghub/internal/pdf"
	"bloghub/internal/repositories"
	"bloghub/internal/storage"
	"bloghub/internal/utils"
)

// ===== users =====

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
	err    error

	// createErr бьёт только Create: гонка между GetByEmail и вставкой
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}}
}

func clone(u *models.User) *models.User {
	cp := *u
	return &cp
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.users[u.ID] = clone(u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[id]; ok {
		return clone(u), nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) byEmail(email string) *models.User {
	for _, u := range r.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func live(expiresAt *time.Time, now time.Time) bool {
	return expiresAt == nil || expiresAt.After(now)
}

func (r *fakeUserRepo) SetRegistrationOTP(_ context.Context, id int64, otp int, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok && !u.AccountVerified {
		u.RegistrationOTP, u.RegistrationOTPExpiresAt = &otp, &expiresAt
	}
	return nil
}

func (r *fakeUserRepo) ConsumeRegistrationOTP(_ context.Context, email string, otp int, now time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.byEmail(email)
	if u == nil || u.AccountVerified || u.RegistrationOTP == nil || *u.RegistrationOTP != otp || !live(u.RegistrationOTPExpiresAt, now) {
		return nil, nil
	}
	u.AccountVerified = true
	u.RegistrationOTP, u.RegistrationOTPExpiresAt = nil, nil
	return clone(u), nil
}

func (r *fakeUserRepo) EnableTwoFactor(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.TwoFactorEnabled {
		return false, nil
	}
	u.TwoFactorEnabled = true
	return true, nil
}

func (r *fakeUserRepo) DisableTwoFactor(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || !u.TwoFactorEnabled {
		return false, nil
	}
	u.TwoFactorEnabled = false
	u.TwoFactorEmail, u.TwoFactorEmailOTP, u.TwoFactorOTPExpiresAt = nil, nil, nil
	u.TwoFactorEmailVerified = false
	return true, nil
}

func (r *fakeUserRepo) SetTwoFactorEmailOTP(_ context.Context, id int64, email string, otp int, expiresAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || !u.TwoFactorEnabled {
		return false, nil
	}
	u.TwoFactorEmail, u.TwoFactorEmailOTP, u.TwoFactorOTPExpiresAt = &email, &otp, &expiresAt
	u.TwoFactorEmailVerified = false
	return true, nil
}

func (r *fakeUserRepo) ConsumeTwoFactorEmailOTP(_ context.Context, id int64, email string, otp int, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || !u.TwoFactorEnabled || u.TwoFactorEmail == nil || *u.TwoFactorEmail != email ||
		u.TwoFactorEmailOTP == nil || *u.TwoFactorEmailOTP != otp || !live(u.TwoFactorOTPExpiresAt, now) {
		return false, nil
	}
	u.TwoFactorEmailOTP, u.TwoFactorOTPExpiresAt = nil, nil
	u.TwoFactorEmailVerified = true
	return true, nil
}

func (r *fakeUserRepo) SetPasswordResetOTP(_ context.Context, id int64, otp int, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.PasswordResetOTP, u.PasswordResetOTPExpiresAt = &otp, &expiresAt
	}
	return nil
}

func (r *fakeUserRepo) ConsumePasswordResetOTP(_ context.Context, id int64, otp int, now time.Time, hash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.PasswordResetOTP == nil || *u.PasswordResetOTP != otp || !live(u.PasswordResetOTPExpiresAt, now) {
		return false, nil
	}
	u.PasswordHash = hash
	u.PasswordResetOTP, u.PasswordResetOTPExpiresAt = nil, nil
	return true, nil
}

func (r *fakeUserRepo) UpdateProfileImage(_ context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.ProfileImageURL = url
	}
	return nil
}

func (r *fakeUserRepo) UpdateCoverImage(_ context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.CoverImageURL = url
	}
	return nil
}

// stored returns the raw row, secrets included.
func (r *fakeUserRepo) stored(id int64) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return clone(u)
	}
	return nil
}

// ===== posts / comments =====

type fakePostRepo struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]*models.Post
}

func newFakePostRepo() *fakePostRepo { return &fakePostRepo{posts: map[int64]*models.Post{}} }

func (r *fakePostRepo) Create(_ context.Context, p *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePostRepo) List(_ context.Context, limit, offset int) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Post{}
	for _, p := range r.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset >= len(out) {
		return []models.Post{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, p *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) IncrementCommentCount(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[id]; ok {
		p.CommentCount++
	}
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   int64
	comments map[int64]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*models.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.comments[id]; ok {
		cp := *c
		cp.Author = nil
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID int64) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCommentRepo) ListByPosts(ctx context.Context, postIDs []int64) (map[int64][]models.Comment, error) {
	out := map[int64][]models.Comment{}
	for _, id := range postIDs {
		cs, _ := r.ListByPost(ctx, id)
		if len(cs) > 0 {
			out[id] = cs
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, id int64, text string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.comments[id]; ok {
		c.Comment, c.UpdatedAt = text, updatedAt
	}
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, id)
	return nil
}

// ===== activity / links =====

type fakeActivityRepo struct {
	mu      sync.Mutex
	entries []models.ActivityLog
}

func (r *fakeActivityRepo) Append(_ context.Context, e *models.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = int64(len(r.entries) + 1)
	e.CreatedAt = time.Now()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeActivityRepo) ListByUser(_ context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.ActivityLog{}
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].UserID == userID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

type fakeLinkRepo struct {
	mu    sync.Mutex
	links []models.SocialMediaLink
}

func (r *fakeLinkRepo) Find(_ context.Context, userID int64, p models.Platform) (*models.SocialMediaLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.links {
		if l.UserID == userID && l.Platform == p {
			cp := l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLinkRepo) Create(_ context.Context, l *models.SocialMediaLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.links {
		if existing.UserID == l.UserID && existing.Platform == l.Platform {
			return repositories.ErrDuplicate
		}
	}
	l.ID = int64(len(r.links) + 1)
	r.links = append(r.links, *l)
	return nil
}

func (r *fakeLinkRepo) ListByUser(_ context.Context, userID int64) ([]models.SocialMediaLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.SocialMediaLink{}
	for _, l := range r.links {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ===== collaborators =====

type sentMail struct {
	Kind string
	To   string
	OTP  int
}

type fakeEmails struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeEmails) record(kind, to string, otp int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{Kind: kind, To: to, OTP: otp})
	return nil
}

func (f *fakeEmails) last() sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return sentMail{}
	}
	return f.sent[len(f.sent)-1]
}

func (f *fakeEmails) SendVerificationOTP(to, _ string, otp int) error {
	return f.record(TplVerifyEmail, to, otp)
}
func (f *fakeEmails) SendAccountVerified(to, _ string) error {
	return f.record(TplAccountVerified, to, 0)
}
func (f *fakeEmails) SendTwoFactorEmailOTP(to, _ string, otp int) error {
	return f.record(TplTwoFactorEmailVerify, to, otp)
}
func (f *fakeEmails) SendTwoFactorEmailVerified(to, _ string) error {
	return f.record(TplTwoFactorEmailVerified, to, 0)
}
func (f *fakeEmails) SendPasswordResetOTP(to, _ string, otp int) error {
	return f.record(TplPasswordResetRequest, to, otp)
}
func (f *fakeEmails) SendPasswordResetSuccess(to, _ string) error {
	return f.record(TplPasswordResetSuccess, to, 0)
}

type fakeUploader struct {
	objects []storage.Object
	err     error
}

func (f *fakeUploader) Upload(_ context.Context, obj storage.Object) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.objects = append(f.objects, obj)
	return "/files/" + obj.Prefix + "/img.png", nil
}

type fakeReports struct {
	data pdf.ActivityReportData
}

func (f *fakeReports) ActivityReport(w io.Writer, data pdf.ActivityReportData) error {
	f.data = data
	_, err := io.WriteString(w, "%PDF-fake")
	return err
}

// sequenceOTP returns the given codes in order.
func sequenceOTP(codes ...int) utils.OTPGenerator {
	i := 0
	return func() (int, error) {
		if i >= len(codes) {
			return 0, errors.New("otp sequence exhausted")
		}
		c := codes[i]
		i++
		return c, nil
	}
}

const testSecret = "test-secret"

func newTestAuth() (AuthService, *utils.TokenIssuer) {
	issuer := utils.NewTokenIssuer(testSecret, utils.DefaultTokenTTL)
	return NewAuthService(issuer, bcrypt.MinCost), issuer
}

// env собирает все сервисы на общих фейках.
type env struct {
	users    *fakeUserRepo
	posts    *fakePostRepo
	comments *fakeCommentRepo
	activity *fakeActivityRepo
	links    *fakeLinkRepo
	emails   *fakeEmails
	uploader *fakeUploader
	reports  *fakeReports
	auth     AuthService
	issuer   *utils.TokenIssuer
	now      time.Time

	userSvc    *userService
	twoFactor  *twoFactorService
	reset      *passwordResetService
	postSvc    *postService
	commentSvc *commentService
	profile    *profileService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log, _ := test.NewNullLogger()
	e := &env{
		users:    newFakeUserRepo(),
		posts:    newFakePostRepo(),
		comments: newFakeCommentRepo(),
		activity: &fakeActivityRepo{},
		links:    &fakeLinkRepo{},
		emails:   &fakeEmails{},
		uploader: &fakeUploader{},
		reports:  &fakeReports{},
		now:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	e.auth, e.issuer = newTestAuth()
	clock := func() time.Time { return e.now }

	e.userSvc = NewUserService(e.users, e.activity, e.emails, e.auth, e.uploader, 10*time.Minute, log).(*userService)
	e.userSvc.now = clock
	e.twoFactor = NewTwoFactorService(e.users, e.emails, 10*time.Minute, log).(*twoFactorService)
	e.twoFactor.now = clock
	e.reset = NewPasswordResetService(e.users, e.emails, e.auth, 10*time.Minute, log).(*passwordResetService)
	e.reset.now = clock
	e.postSvc = NewPostService(e.posts, e.comments, e.users, e.activity, e.uploader, log).(*postService)
	e.postSvc.now = clock
	e.commentSvc = NewCommentService(e.comments, e.posts, e.users, e.activity, log).(*commentService)
	e.commentSvc.now = clock
	e.profile = NewProfileService(e.users, e.links, e.activity, e.uploader, e.reports, log).(*profileService)
	e.profile.now = clock
	return e
}

// seedUser inserts a user directly into the store.
func (e *env) seedUser(t *testing.T, email, password string, verified bool) *models.User {
	t.Helper()
	hash, err := e.auth.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	u := &models.User{Name: "Test User", Email: email, PasswordHash: hash, AccountVerified: verified}
	if err := e.users.Create(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	return u
}
