package repositories

import (
	"github.com/shashiranjanraj/sweetshop/app/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User. The handle is
// injected at composition time; repositories never reach for globals.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by exact email. Returns
// gorm.ErrRecordNotFound when absent.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
