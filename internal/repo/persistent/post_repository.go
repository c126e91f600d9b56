package persistent

import (
	"errors"

	"dev-portfolio/internal/entity"
	"dev-portfolio/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id int64) (*entity.Post, error)
	List() ([]*entity.Post, error)
	Update(id int64, title, content string) error
	Delete(id int64) error
	CreateComment(comment *entity.Comment) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	*post = *ToPostEntity(postModel)
	return nil
}

// GetByID loads the post and its comments with two independent queries
// and merges them in memory, newest comments first.
func (r *postRepository) GetByID(id int64) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.First(&postModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var commentModels []model.CommentModel
	if err := r.db.
		Where("post_id = ?", id).
		Order("created_at DESC, id DESC").
		Find(&commentModels).Error; err != nil {
		return nil, err
	}

	post := ToPostEntity(&postModel)
	post.Comments = make([]entity.Comment, len(commentModels))
	for i := range commentModels {
		post.Comments[i] = ToCommentEntity(&commentModels[i])
	}

	return post, nil
}

func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.
		Order("published_at DESC, id DESC").
		Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Update overwrites the two mutable fields and refreshes updated_at.
// Updating a missing id is a no-op, not an error.
func (r *postRepository) Update(id int64, title, content string) error {
	return r.db.Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		}).Error
}

// Delete removes the post and every comment referencing it. SQLite only
// honours ON DELETE CASCADE behind a pragma, so the cascade is explicit:
// children first, then the post, inside one transaction.
func (r *postRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PostModel{}, id).Error
	})
}

func (r *postRepository) CreateComment(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}

	*comment = ToCommentEntity(commentModel)
	return nil
}
