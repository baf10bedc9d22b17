package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 用户不存在和密码错误统一成这一个错误，防止撞库探测
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 注册成功直接返回 Token
func (s *AuthService) Register(ctx context.Context, email, username, password, fullName string) (string, error) {
	// 1. 用户名 / 邮箱唯一性检查（DB 唯一索引兜底）
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return "", ruleErrf("username already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return "", ruleErrf("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	// 2. 密码加密
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	// 3. 落库
	user := &model.User{
		Email:          email,
		Username:       username,
		HashedPassword: string(hash),
		FullName:       fullName,
		IsActive:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	return s.generateToken(user.ID)
}

// Login 登录逻辑，校验通过后顺手做哈希迁移
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", ruleErrf("inactive user")
	}

	// 哈希迁移：旧 cost 的哈希在登录成功后用当前 cost 重写，
	// 迁移失败不影响本次登录
	if cost, err := bcrypt.Cost([]byte(user.HashedPassword)); err == nil && cost != bcrypt.DefaultCost {
		if newHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
			if err := s.userRepo.UpdatePassword(ctx, user.ID, string(newHash)); err != nil {
				slog.Warn("password rehash failed", "userID", user.ID, "err", err)
			}
		}
	}

	return s.generateToken(user.ID)
}

// GetUser /auth/me 用
func (s *AuthService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return user, nil
}

func (s *AuthService) generateToken(userID uint) (string, error) {
	secret := viper.GetString("jwt.secret")
	expireMinutes := viper.GetInt("jwt.expire_minutes")

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Minute * time.Duration(expireMinutes)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// notFoundOr 把 gorm 的 ErrRecordNotFound 翻译成服务层错误
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
