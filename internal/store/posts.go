package store

import (
	"context"

	"wayfarer/internal/models"
)

// ListPosts возвращает ленту постов, свежие первыми
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.list(ctx)
}

// AddPost prepends the post so the feed stays most-recent-first.
func (s *Store) AddPost(ctx context.Context, post models.Post) error {
	return s.posts.prepend(ctx, post)
}

// TogglePostLike adds userID to the post's like set if absent and
// removes it if present. An unknown postID is a silent no-op, though
// the collection is still persisted.
func (s *Store) TogglePostLike(ctx context.Context, postID, userID string) error {
	return s.posts.update(ctx, func(posts []models.Post) []models.Post {
		for i := range posts {
			if posts[i].ID == postID {
				posts[i].Likes = models.ToggleLike(posts[i].Likes, userID)
				break
			}
		}
		return posts
	})
}

// AddPostComment appends the comment to the post's embedded list.
// An unknown postID is a silent no-op.
func (s *Store) AddPostComment(ctx context.Context, postID string, comment models.Comment) error {
	return s.posts.update(ctx, func(posts []models.Post) []models.Post {
		for i := range posts {
			if posts[i].ID == postID {
				posts[i].Comments = append(posts[i].Comments, comment)
				break
			}
		}
		return posts
	})
}
