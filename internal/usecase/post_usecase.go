package usecase

import (
	"fmt"

	"dev-portfolio/internal/entity"
	"dev-portfolio/internal/repo/persistent"
	"dev-portfolio/pkg/logger"
)

type PostUseCase interface {
	CreatePost(title, content string) (*entity.Post, error)
	GetPost(postID int64) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	UpdatePost(postID int64, title, content string) error
	DeletePost(postID int64) error
	AddComment(postID int64, author, content string) (*entity.Comment, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(title, content string) (*entity.Post, error) {
	post := &entity.Post{
		Title:   title,
		Content: content,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Info("Published post %d: %s", post.ID, post.Title)
	return post, nil
}

func (uc *postUseCase) GetPost(postID int64) (*entity.Post, error) {
	return uc.postRepo.GetByID(postID)
}

func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	return uc.postRepo.List()
}

func (uc *postUseCase) UpdatePost(postID int64, title, content string) error {
	if err := uc.postRepo.Update(postID, title, content); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (uc *postUseCase) DeletePost(postID int64) error {
	if err := uc.postRepo.Delete(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	uc.logger.Info("Deleted post %d and its comments", postID)
	return nil
}

func (uc *postUseCase) AddComment(postID int64, author, content string) (*entity.Comment, error) {
	comment := &entity.Comment{
		PostID:  postID,
		Author:  author,
		Content: content,
	}

	if err := uc.postRepo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
