package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"bloghub/internal/authz"
	"bloghub/internal/models"
	"bloghub/internal/repositories"
)

type CommentService interface {
	List(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, principalID, postID int64, text string) (*models.Comment, error)
	Update(ctx context.Context, principalID, commentID int64, text string) (*models.Comment, error)
	Delete(ctx context.Context, principalID, commentID int64) error
}

type commentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
	activity repositories.ActivityRepository
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewCommentService(
	comments repositories.CommentRepository,
	posts repositories.PostRepository,
	users repositories.UserRepository,
	activity repositories.ActivityRepository,
	log logrus.FieldLogger,
) CommentService {
	return &commentService{
		comments: comments,
		posts:    posts,
		users:    users,
		activity: activity,
		log:      log,
		now:      time.Now,
	}
}

func (s *commentService) List(ctx context.Context, postID int64) ([]models.Comment, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, storeErr("list comments", err)
	}
	return comments, nil
}

// Create: владение не проверяется, комментировать может любой существующий пользователь.
func (s *commentService) Create(ctx context.Context, principalID, postID int64, text string) (*models.Comment, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	author, err := s.users.GetByID(ctx, principalID)
	if err != nil {
		return nil, storeErr("get user by id", err)
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	now := s.now()
	c := &models.Comment{
		PostID:    postID,
		UserID:    principalID,
		Comment:   text,
		CreatedAt: now,
		UpdatedAt: now,
		Author: &models.CommentAuthor{
			ID:              author.ID,
			Name:            author.Name,
			ProfileImageURL: author.ProfileImageURL,
		},
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, storeErr("create comment", err)
	}
	if err := s.posts.IncrementCommentCount(ctx, postID); err != nil {
		return nil, storeErr("increment comment count", err)
	}
	if err := s.activity.Append(ctx, &models.ActivityLog{
		UserID: principalID, PostID: &postID, CommentID: &c.ID, Action: models.ActivityCommentCreated,
	}); err != nil {
		return nil, storeErr("append activity", err)
	}
	s.log.WithFields(logrus.Fields{"user_id": principalID, "post_id": postID, "comment_id": c.ID}).Info("[comment][create] comment created")
	return c, nil
}

func (s *commentService) Update(ctx context.Context, principalID, commentID int64, text string) (*models.Comment, error) {
	c, err := s.find(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwner(c.UserID, principalID); err != nil {
		return nil, ErrForbidden
	}
	c.Comment = text
	c.UpdatedAt = s.now()
	if err := s.comments.Update(ctx, commentID, text, c.UpdatedAt); err != nil {
		return nil, storeErr("update comment", err)
	}
	return c, nil
}

// Delete не уменьшает comment_count у поста.
func (s *commentService) Delete(ctx context.Context, principalID, commentID int64) error {
	c, err := s.find(ctx, commentID)
	if err != nil {
		return err
	}
	if err := authz.AssertOwner(c.UserID, principalID); err != nil {
		return ErrForbidden
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return storeErr("delete comment", err)
	}
	return nil
}

func (s *commentService) ensurePost(ctx context.Context, postID int64) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return storeErr("get post", err)
	}
	if post == nil {
		return ErrPostNotFound
	}
	return nil
}

func (s *commentService) find(ctx context.Context, id int64) (*models.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get comment", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}
	return c, nil
}
