package services

import (
	"context"
	"time"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"bloghub/internal/authz"
	"bloghub/internal/models"
	"bloghub/internal/repositories"
	"bloghub/internal/storage"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PostService interface {
	Create(ctx context.Context, principalID int64, req models.PostRequest, image *storage.Object) (*models.Post, error)
	List(ctx context.Context, page, limit int) ([]models.Post, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	Update(ctx context.Context, principalID, postID int64, req models.PostRequest) (*models.Post, error)
	Delete(ctx context.Context, principalID, postID int64) error
}

type postService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	users    repositories.UserRepository
	activity repositories.ActivityRepository
	uploader storage.Uploader
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewPostService(
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	users repositories.UserRepository,
	activity repositories.ActivityRepository,
	uploader storage.Uploader,
	log logrus.FieldLogger,
) PostService {
	return &postService{
		posts:    posts,
		comments: comments,
		users:    users,
		activity: activity,
		uploader: uploader,
		log:      log,
		now:      time.Now,
	}
}

func (s *postService) Create(ctx context.Context, principalID int64, req models.PostRequest, image *storage.Object) (*models.Post, error) {
	author, err := s.users.GetByID(ctx, principalID)
	if err != nil {
		return nil, storeErr("get user by id", err)
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	var imageURL string
	if image != nil {
		image.Prefix = "post"
		if imageURL, err = s.uploader.Upload(ctx, *image); err != nil {
			return nil, upstreamErr("upload post image", err)
		}
	}

	now := s.now()
	post := &models.Post{
		UserID:    principalID,
		Title:     req.Title,
		Slug:      slug.Make(req.Title),
		Content:   req.Content,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, storeErr("create post", err)
	}
	if err := s.activity.Append(ctx, &models.ActivityLog{UserID: principalID, PostID: &post.ID, Action: models.ActivityPostCreated}); err != nil {
		return nil, storeErr("append activity", err)
	}
	s.log.WithFields(logrus.Fields{"user_id": principalID, "post_id": post.ID}).Info("[post][create] post created")
	return post, nil
}

func (s *postService) List(ctx context.Context, page, limit int) ([]models.Post, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	posts, err := s.posts.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, storeErr("list posts", err)
	}
	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]int64, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	byPost, err := s.comments.ListByPosts(ctx, ids)
	if err != nil {
		return nil, storeErr("list comments by posts", err)
	}
	for i := range posts {
		posts[i].Comments = byPost[posts[i].ID]
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, storeErr("list comments", err)
	}
	post.Comments = comments
	return post, nil
}

func (s *postService) Update(ctx context.Context, principalID, postID int64, req models.PostRequest) (*models.Post, error) {
	post, err := s.find(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwner(post.UserID, principalID); err != nil {
		return nil, ErrForbidden
	}

	post.Title = req.Title
	post.Slug = slug.Make(req.Title)
	post.Content = req.Content
	post.UpdatedAt = s.now()
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, storeErr("update post", err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, principalID, postID int64) error {
	post, err := s.find(ctx, postID)
	if err != nil {
		return err
	}
	if err := authz.AssertOwner(post.UserID, principalID); err != nil {
		return ErrForbidden
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return storeErr("delete post", err)
	}
	s.log.WithFields(logrus.Fields{"user_id": principalID, "post_id": postID}).Info("[post][delete] post deleted")
	return nil
}

func (s *postService) find(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get post", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}
