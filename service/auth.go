package service

import (
	"Plume/config"
	"Plume/dao"
	"Plume/models"
	"Plume/pkg/encrypt"
	"Plume/pkg/jwt"
	"Plume/pkg/response"
	"Plume/pkg/snowflake"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error)
	Login(ctx context.Context, name string, password string) (*LoginResult, error)
}

type AuthService struct {
	UsersRepo *dao.Users
	Config    *config.Config
}

type UserRegisterOpt struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token  string `json:"token"`
	UserID uint64 `json:"user_id"`
}

// Register 注册用户
func (s *AuthService) Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error) {
	if err := validatePassword(opt.Password); err != nil {
		return nil, err
	}
	if s.UsersRepo.IsNameExist(ctx, opt.Name) {
		return nil, ErrNameTaken
	}

	user := &models.User{
		ID:        uint64(snowflake.GenID()),
		Name:      opt.Name,
		Nickname:  opt.Nickname,
		Password:  encrypt.HashPassword(opt.Password),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册同名时唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login 登录处理。账号不存在和密码错误返回同一个错误，避免枚举用户名
func (s *AuthService) Login(ctx context.Context, name string, password string) (*LoginResult, error) {
	user, err := s.UsersRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	expire := time.Duration(s.Config.Jwt.Expire()) * time.Hour
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Name, expire)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, UserID: user.ID}, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return response.BadRequest("密码长度不能小于8位")
	}
	if len(password) > 100 {
		return response.BadRequest("密码长度不能超过100位")
	}
	return nil
}
