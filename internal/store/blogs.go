package store

import (
	"context"

	"wayfarer/internal/models"
)

func (s *Store) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.blogs.list(ctx)
}

func (s *Store) AddBlog(ctx context.Context, blog models.Blog) error {
	return s.blogs.prepend(ctx, blog)
}

// ToggleBlogLike mirrors TogglePostLike for the blogs collection.
func (s *Store) ToggleBlogLike(ctx context.Context, blogID, userID string) error {
	return s.blogs.update(ctx, func(blogs []models.Blog) []models.Blog {
		for i := range blogs {
			if blogs[i].ID == blogID {
				blogs[i].Likes = models.ToggleLike(blogs[i].Likes, userID)
				break
			}
		}
		return blogs
	})
}

// AddBlogComment appends to the blog's embedded comment list; unknown
// blogID is a silent no-op.
func (s *Store) AddBlogComment(ctx context.Context, blogID string, comment models.BlogComment) error {
	return s.blogs.update(ctx, func(blogs []models.Blog) []models.Blog {
		for i := range blogs {
			if blogs[i].ID == blogID {
				blogs[i].Comments = append(blogs[i].Comments, comment)
				break
			}
		}
		return blogs
	})
}
