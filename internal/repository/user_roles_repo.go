package repository

import (
	"Herald/internal/model"
	"context"

	"gorm.io/gorm"
)

type UserRolesRepo interface {
	GetUserRoles(ctx context.Context, userId uint64) ([]*model.Role, error)
}

type UserRolesRepoImpl struct {
	db *gorm.DB
}

func NewUserRolesRepo(db *gorm.DB) UserRolesRepo {
	return &UserRolesRepoImpl{db: db}
}

// GetUserRoles 能力查表：一个用户可以有多个角色，管理员不止一个也无需改结构
func (s *UserRolesRepoImpl) GetUserRoles(ctx context.Context, userId uint64) ([]*model.Role, error) {
	var roles []*model.Role
	err := s.db.WithContext(ctx).
		Table("roles").
		Select("roles.*").
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userId).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
