package middlewares

import (
	"context"
	"errors"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"go.uber.org/zap"
)

// Locals anahtarları
const (
	AdminUsernameLocalsKey = "admin_username"
	AdminUserLocalsKey     = "admin_user"
	UserNameLocalsKey      = "userName"
)

const adminRealm = "FormYap Yönetim"

// AdminAuth yönetim paneline HTTP Basic Auth ile giriş ister.
// Şifre kontrolü AdminUser kayıtlarındaki bcrypt hash'ine karşı yapılır.
func AdminAuth(adminService services.IAdminUserService) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: adminRealm,
		Authorizer: func(username, password string) bool {
			_, err := adminService.Authenticate(context.Background(), username, password)
			if err != nil {
				if !errors.Is(err, services.ErrInvalidCredentials) && !errors.Is(err, services.ErrAdminUserInactive) {
					configslog.Log.Error("Yönetici doğrulaması yapılamadı", zap.String("username", username), zap.Error(err))
				}
				return false
			}
			return true
		},
		ContextUsername: AdminUsernameLocalsKey,
	})
}

// LoadAdminUser doğrulanmış kullanıcıyı yetki kontrolleri için Locals'a yükler.
func LoadAdminUser(adminService services.IAdminUserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, _ := c.Locals(AdminUsernameLocalsKey).(string)
		if username == "" {
			return fiber.ErrUnauthorized
		}
		user, err := adminService.GetByUsername(c.UserContext(), username)
		if err != nil {
			configslog.Log.Warn("Doğrulanmış yönetici yüklenemedi", zap.String("username", username), zap.Error(err))
			return fiber.ErrUnauthorized
		}
		c.Locals(AdminUserLocalsKey, user)
		c.Locals(UserNameLocalsKey, user.Username)
		return c.Next()
	}
}

// RequirePermission kullanıcının verilen yetkiye sahip olmasını ister.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(AdminUserLocalsKey).(*models.AdminUser)
		if !ok || user == nil || !user.HasPermission(permission) {
			configslog.SLog.Warnf("Yetkisiz erişim denemesi: %s %s (yetki: %s)", c.Method(), c.Path(), permission)
			return forbidden(c)
		}
		return c.Next()
	}
}

func forbidden(c *fiber.Ctx) error {
	if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMEApplicationJSON {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Bu işlem için yetkiniz yok"})
	}
	return c.Status(fiber.StatusForbidden).Render("errors/403", fiber.Map{"Title": "Yetkisiz Erişim"}, "layouts/error_layout")
}

// CurrentAdmin handler'larda oturumdaki yöneticiyi okur.
func CurrentAdmin(c *fiber.Ctx) *models.AdminUser {
	user, _ := c.Locals(AdminUserLocalsKey).(*models.AdminUser)
	return user
}
