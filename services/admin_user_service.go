package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminUserServiceError string

func (e AdminUserServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials   AdminUserServiceError = "kullanıcı adı veya şifre hatalı"
	ErrAdminUserInactive    AdminUserServiceError = "yönetici hesabı pasif"
	ErrAdminUserNotFound    AdminUserServiceError = "yönetici bulunamadı"
	ErrAdminPasswordTooWeak AdminUserServiceError = "şifre en az 8 karakter olmalıdır"
	ErrPasswordHashFailed   AdminUserServiceError = "şifre oluşturulamadı"
)

const minAdminPasswordLength = 8

type IAdminUserService interface {
	Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	SetPassword(ctx context.Context, user *models.AdminUser, password string) error
}

type AdminUserService struct {
	repo repositories.IAdminUserRepository
}

func NewAdminUserService() IAdminUserService {
	return NewAdminUserServiceWith(repositories.NewAdminUserRepository())
}

func NewAdminUserServiceWith(repo repositories.IAdminUserRepository) *AdminUserService {
	return &AdminUserService{repo: repo}
}

// Authenticate kullanıcı adı ve şifreyi bcrypt hash'i ile karşılaştırır.
// Kullanıcının olmaması ile şifrenin yanlış olması aynı hatayı döndürür.
func (s *AdminUserService) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		configslog.Log.Warn("Başarısız yönetici girişi", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAdminUserInactive
	}
	return user, nil
}

func (s *AdminUserService) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAdminUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SetPassword şifreyi hash'ler ve kullanıcıyı kaydeder.
func (s *AdminUserService) SetPassword(ctx context.Context, user *models.AdminUser, password string) error {
	hash, err := HashAdminPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if user.ID == 0 {
		return s.repo.Create(ctx, user)
	}
	return s.repo.Update(ctx, user)
}

// HashAdminPassword seeder ve servis tarafından ortak kullanılan bcrypt hash'i üretir.
func HashAdminPassword(password string) (string, error) {
	if len(password) < minAdminPasswordLength {
		return "", ErrAdminPasswordTooWeak
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordHashFailed, err)
	}
	return string(hash), nil
}

var _ IAdminUserService = (*AdminUserService)(nil)
