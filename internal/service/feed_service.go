package service

import (
	"context"
	"io"
	"strings"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/events"
	"wayfarer/internal/models"

	"github.com/rs/zerolog"
)

type FeedService struct {
	rewarder
}

func NewFeedService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *FeedService {
	return &FeedService{rewarder{repo: repo, eventBus: eventBus, logger: logger}}
}

func (s *FeedService) ListFeed(ctx context.Context) ([]models.Post, error) {
	return s.repo.ListPosts(ctx)
}

// CreatePost publishes a feed post, inlining the optional image as a
// data URL. Posting earns no coins.
func (s *FeedService) CreatePost(ctx context.Context, user models.User, content string, image io.Reader, imageType string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
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

	post := models.Post{
		ID:        models.NewID("post"),
		UserID:    user.ID,
		Username:  user.Username,
		Content:   content,
		Image:     imageData,
		Likes:     []string{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddPost(ctx, post); err != nil {
		return nil, err
	}

	s.publish(events.EventPostCreated, events.EntryEventPayload{
		EntryID:  post.ID,
		UserID:   user.ID,
		Username: user.Username,
	})

	return &post, nil
}

func (s *FeedService) ToggleLike(ctx context.Context, postID, userID string) error {
	return s.repo.TogglePostLike(ctx, postID, userID)
}

// AddComment rejects an unknown post id with ErrNotFound instead of
// returning a comment the store silently dropped.
func (s *FeedService) AddComment(ctx context.Context, user models.User, postID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if err := s.postExists(ctx, postID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        models.NewID("comment"),
		PostID:    postID,
		UserID:    user.ID,
		Username:  user.Username,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddPostComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *FeedService) postExists(ctx context.Context, postID string) error {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return err
	}
	for _, post := range posts {
		if post.ID == postID {
			return nil
		}
	}
	return ErrNotFound
}
