package service

import (
	"Plume/dao"
	"Plume/models"
	"Plume/pkg/log"
	"context"
	"errors"
	"mime/multipart"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetUser(ctx context.Context, userID uint64) (*models.User, error)
	UpdateUser(ctx context.Context, callerID, userID uint64, opt *UserUpdateOpt, iconFile *multipart.FileHeader) (*models.User, error)
	DeleteUser(ctx context.Context, callerID, userID uint64) error
}

type UserService struct {
	UsersRepo *dao.Users
	Oss       IOssService
}

type UserUpdateOpt struct {
	Nickname *string `json:"nickname"`
	IconURL  *string `json:"icon_url"`
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// UpdateUser 更新资料。头像换新后旧图删除失败只记日志，不影响本次更新
func (s *UserService) UpdateUser(ctx context.Context, callerID, userID uint64, opt *UserUpdateOpt, iconFile *multipart.FileHeader) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(callerID, user.ID); err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if opt.Nickname != nil {
		updates["nickname"] = *opt.Nickname
		user.Nickname = *opt.Nickname
	}

	oldIconURL := user.IconURL
	if iconFile != nil {
		iconURL, err := s.Oss.UploadImage(ctx, "user-icons", iconFile)
		if err != nil {
			return nil, err
		}
		updates["icon_url"] = iconURL
		user.IconURL = iconURL

		if oldIconURL != "" {
			if err := s.Oss.DeleteByURL(ctx, oldIconURL); err != nil {
				log.L.Warn("delete old icon failed", zap.String("url", oldIconURL), zap.Error(err))
			}
		}
	} else if opt.IconURL != nil {
		updates["icon_url"] = *opt.IconURL
		user.IconURL = *opt.IconURL
	}

	if err := s.UsersRepo.UpdateById(ctx, userID, updates); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser 删除账号，头像清理失败同样只记日志
func (s *UserService) DeleteUser(ctx context.Context, callerID, userID uint64) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := requireOwner(callerID, user.ID); err != nil {
		return err
	}

	if user.IconURL != "" {
		if err := s.Oss.DeleteByURL(ctx, user.IconURL); err != nil {
			log.L.Warn("delete user icon failed", zap.String("url", user.IconURL), zap.Error(err))
		}
	}

	return s.UsersRepo.DeleteById(ctx, userID)
}
