package persistent

import (
	"dev-portfolio/internal/entity"
	"dev-portfolio/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		PublishedAt: m.PublishedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.Comments) > 0 {
		post.Comments = make([]entity.Comment, len(m.Comments))
		for i, c := range m.Comments {
			post.Comments[i] = ToCommentEntity(&c)
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Title:       e.Title,
		Content:     e.Content,
		PublishedAt: e.PublishedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) entity.Comment {
	if m == nil {
		return entity.Comment{}
	}

	return entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		Author:    m.Author,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		Author:    e.Author,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}

func ToProjectEntity(m *model.ProjectModel) *entity.Project {
	if m == nil {
		return nil
	}

	return &entity.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		VideoURL:    m.VideoURL,
		LiveURL:     m.LiveURL,
		RepoURL:     m.RepoURL,
		CreatedAt:   m.CreatedAt,
	}
}

func ToProjectModel(e *entity.Project) *model.ProjectModel {
	if e == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		ImageURL:    e.ImageURL,
		VideoURL:    e.VideoURL,
		LiveURL:     e.LiveURL,
		RepoURL:     e.RepoURL,
		CreatedAt:   e.CreatedAt,
	}
}
