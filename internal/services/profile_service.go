package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"bloghub/internal/models"
	"bloghub/internal/pdf"
	"bloghub/internal/repositories"
	"bloghub/internal/storage"
)

const activityLimit = 100

type ProfileService interface {
	Profile(ctx context.Context, userID int64) (*models.User, error)
	ListLinks(ctx context.Context, userID int64) ([]models.SocialMediaLink, error)
	AddLink(ctx context.Context, userID int64, req models.SocialMediaLinkRequest) (*models.SocialMediaLink, error)
	UpdateCoverImage(ctx context.Context, userID int64, image storage.Object) (*models.User, error)
	Activity(ctx context.Context, userID int64) ([]models.ActivityLog, error)
	ActivityReport(ctx context.Context, userID int64, w io.Writer) error
}

type profileService struct {
	users    repositories.UserRepository
	links    repositories.SocialLinkRepository
	activity repositories.ActivityRepository
	uploader storage.Uploader
	reports  pdf.ReportGenerator
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewProfileService(
	users repositories.UserRepository,
	links repositories.SocialLinkRepository,
	activity repositories.ActivityRepository,
	uploader storage.Uploader,
	reports pdf.ReportGenerator,
	log logrus.FieldLogger,
) ProfileService {
	return &profileService{
		users:    users,
		links:    links,
		activity: activity,
		uploader: uploader,
		reports:  reports,
		log:      log,
		now:      time.Now,
	}
}

func (s *profileService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeErr("get user by id", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}

func (s *profileService) ListLinks(ctx context.Context, userID int64) ([]models.SocialMediaLink, error) {
	links, err := s.links.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list social links", err)
	}
	return links, nil
}

func (s *profileService) AddLink(ctx context.Context, userID int64, req models.SocialMediaLinkRequest) (*models.SocialMediaLink, error) {
	if !req.Platform.Valid() {
		return nil, NewValidationError("platform", "must be one of Twitter, LinkedIn, Instagram, Facebook, GitHub")
	}
	existing, err := s.links.Find(ctx, userID, req.Platform)
	if err != nil {
		return nil, storeErr("find social link", err)
	}
	if existing != nil {
		return nil, ErrLinkExists
	}

	link := &models.SocialMediaLink{UserID: userID, Platform: req.Platform, URL: req.URL}
	if err := s.links.Create(ctx, link); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrLinkExists
		}
		return nil, storeErr("create social link", err)
	}
	return link, nil
}

func (s *profileService) UpdateCoverImage(ctx context.Context, userID int64, image storage.Object) (*models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	image.Prefix = "cover"
	url, err := s.uploader.Upload(ctx, image)
	if err != nil {
		return nil, upstreamErr("upload cover image", err)
	}
	if err := s.users.UpdateCoverImage(ctx, userID, url); err != nil {
		return nil, storeErr("update cover image", err)
	}
	user.CoverImageURL = url
	s.log.WithField("user_id", userID).Info("[profile][cover] cover image updated")
	return user, nil
}

func (s *profileService) Activity(ctx context.Context, userID int64) ([]models.ActivityLog, error) {
	entries, err := s.activity.ListByUser(ctx, userID, activityLimit)
	if err != nil {
		return nil, storeErr("list activity", err)
	}
	return entries, nil
}

func (s *profileService) ActivityReport(ctx context.Context, userID int64, w io.Writer) error {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	entries, err := s.Activity(ctx, userID)
	if err != nil {
		return err
	}
	return s.reports.ActivityReport(w, pdf.ActivityReportData{
		User:        user,
		Entries:     entries,
		GeneratedAt: s.now(),
	})
}
