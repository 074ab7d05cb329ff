package repository

import (
	"github.com/todofast/api/internal/database"
	"github.com/todofast/api/internal/models"
	"github.com/todofast/api/internal/utils"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create creates a new todo
func (r *GormTodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// FindByIDAndOwner finds a todo by ID within the owner's scope
func (r *GormTodoRepository) FindByIDAndOwner(id, ownerID uint64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.Where("id = ? AND user_id = ?", id, ownerID).
		First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// List retrieves the owner's todos with filtering and pagination
func (r *GormTodoRepository) List(filter TodoFilter) ([]models.Todo, error) {
	var todos []models.Todo

	query := r.db.Model(&models.Todo{}).Where("user_id = ?", filter.OwnerID)

	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.Description != "" {
		query = query.Where("description LIKE ?", "%"+filter.Description+"%")
	}
	if filter.State != nil {
		query = query.Where("state = ?", *filter.State)
	}

	params := utils.PaginationParams{Offset: filter.Offset, Limit: filter.Limit}
	if err := query.Scopes(database.Paginate(params)).Find(&todos).Error; err != nil {
		return nil, err
	}

	return todos, nil
}

// Update updates a todo
func (r *GormTodoRepository) Update(todo *models.Todo) error {
	return r.db.Save(todo).Error
}

// Delete deletes a todo
func (r *GormTodoRepository) Delete(todo *models.Todo) error {
	return r.db.Delete(todo).Error
}
