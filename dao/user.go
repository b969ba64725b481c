package dao

import (
	"Plume/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByName 登录名查询
func (u *Users) FindByName(ctx context.Context, name string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "name = ?", name)
}

// IsNameExist 判断登录名是否已占用
func (u *Users) IsNameExist(ctx context.Context, name string) bool {
	exist, _ := u.Repo.IsExist(ctx, "name = ?", name)
	return exist
}

func (u *Users) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(data).Error
}

func (u *Users) DeleteById(ctx context.Context, id uint64) error {
	return u.Repo.Delete(ctx, "id = ?", id)
}
