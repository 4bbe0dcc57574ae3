package service

import (
	"context"
	"io"
	"strings"
	"time"

	"wayfarer/internal/config"
	"wayfarer/internal/domain"
	"wayfarer/internal/events"
	"wayfarer/internal/models"

	"github.com/rs/zerolog"
)

type BlogService struct {
	rewarder
	rewards config.RewardsConfig
}

func NewBlogService(repo domain.Repository, eventBus domain.EventPublisher, rewards config.RewardsConfig, logger *zerolog.Logger) *BlogService {
	return &BlogService{
		rewarder: rewarder{repo: repo, eventBus: eventBus, logger: logger},
		rewards:  rewards,
	}
}

func (s *BlogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.repo.ListBlogs(ctx)
}

// CreateBlog publishes a blog and credits the author. Tags come in as
// a comma-separated string; blank tags are dropped.
func (s *BlogService) CreateBlog(ctx context.Context, user models.User, title, content, tags string, image io.Reader, imageType string) (*models.Blog, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrEmptyContent
	}

	var imageData string
	if image != nil {
		var err error
		imageData, err = s.repo.SaveDataURL(ctx, image, imageType)
		if err != nil {
			return nil, err
		}
	}

	blog := models.Blog{
		ID:        models.NewID("blog"),
		UserID:    user.ID,
		Username:  user.Username,
		Title:     title,
		Content:   content,
		Image:     imageData,
		Tags:      splitTags(tags),
		Likes:     []string{},
		Comments:  []models.BlogComment{},
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddBlog(ctx, blog); err != nil {
		return nil, err
	}

	s.publish(events.EventBlogCreated, events.EntryEventPayload{
		EntryID:  blog.ID,
		UserID:   user.ID,
		Username: user.Username,
		Title:    title,
	})

	if err := s.award(ctx, user.ID, s.rewards.BlogCreated, "Blog post created"); err != nil {
		return nil, err
	}

	return &blog, nil
}

func (s *BlogService) ToggleLike(ctx context.Context, blogID, userID string) error {
	return s.repo.ToggleBlogLike(ctx, blogID, userID)
}

// AddComment credits the commenter, so the blog must exist: an unknown
// id fails with ErrNotFound before any write.
func (s *BlogService) AddComment(ctx context.Context, user models.User, blogID, content string) (*models.BlogComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if err := s.blogExists(ctx, blogID); err != nil {
		return nil, err
	}

	comment := models.BlogComment{
		ID:        models.NewID("comment"),
		BlogID:    blogID,
		UserID:    user.ID,
		Username:  user.Username,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddBlogComment(ctx, blogID, comment); err != nil {
		return nil, err
	}

	if err := s.award(ctx, user.ID, s.rewards.BlogComment, "Blog comment added"); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (s *BlogService) blogExists(ctx context.Context, blogID string) error {
	blogs, err := s.repo.ListBlogs(ctx)
	if err != nil {
		return err
	}
	for _, blog := range blogs {
		if blog.ID == blogID {
			return nil
		}
	}
	return ErrNotFound
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
