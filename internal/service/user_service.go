package service

import (
	"Herald/internal/api/dto"
	"Herald/internal/model"
	"Herald/internal/pkg/consts"
	"Herald/internal/pkg/redis"
	"Herald/internal/pkg/security"
	"Herald/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

// UserService 管理员账号服务。普通访客无需账号，注册仅用于开通管理入口
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) error
	Login(ctx context.Context, req *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo      repository.UserRepo
	userRolesRepo repository.UserRolesRepo
}

func NewUserService(userRepo repository.UserRepo, userRolesRepo repository.UserRolesRepo) UserService {
	return &userServiceImpl{userRepo: userRepo, userRolesRepo: userRolesRepo}
}

// Register 注册账号，新账号不带任何角色，管理员角色由运维在库中授予
func (u *userServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) error {
	existing, err := u.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		log.ErrorContext(ctx, "查询用户失败", "username", req.Username, "err", err)
		return UnExpectedError
	}
	if existing != nil {
		return ErrUserUsernameExist
	}
	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		log.ErrorContext(ctx, "密码加密失败", "err", err)
		return UnExpectedError
	}
	user := &model.User{
		Username: req.Username,
		Password: hashed,
	}
	if err = u.userRepo.CreateUser(ctx, user, nil); err != nil {
		log.ErrorContext(ctx, "创建用户失败", "username", req.Username, "err", err)
		return UnExpectedError
	}
	return nil
}

func (u *userServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (string, error) {
	user, err := u.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		log.ErrorContext(ctx, "查询用户失败", "username", req.Username, "err", err)
		return "", UnExpectedError
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}
	roles, err := u.roleNames(ctx, user.ID)
	if err != nil {
		return "", UnExpectedError
	}
	token, err := security.GenerateToken(user.ID, roles)
	if err != nil {
		log.ErrorContext(ctx, "签发令牌失败", "userID", user.ID, "err", err)
		return "", UnExpectedError
	}
	return token, nil
}

// Logout 吊销当前令牌，签名写入 Redis 黑名单直到令牌自然过期
func (u *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	if err = redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, "1", security.ExpirationTime()); err != nil {
		log.ErrorContext(ctx, "写入令牌黑名单失败", "err", err)
		return UnExpectedError
	}
	return nil
}

// GetUserInfo 返回账号信息，是否管理员由角色表判定而非写死的账号 id
func (u *userServiceImpl) GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := u.userRepo.GetUserById(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "查询用户失败", "userID", userID, "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		log.ErrorContext(ctx, "用户信息转换失败", "userID", userID, "err", err)
		return nil, UnExpectedError
	}
	roles, err := u.roleNames(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	userDTO.Roles = roles
	for _, role := range roles {
		if role == consts.RoleAdmin {
			userDTO.IsAdmin = true
			break
		}
	}
	return userDTO, nil
}

func (u *userServiceImpl) roleNames(ctx context.Context, userID uint64) ([]string, error) {
	roles, err := u.userRolesRepo.GetUserRoles(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "查询用户角色失败", "userID", userID, "err", err)
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return names, nil
}
