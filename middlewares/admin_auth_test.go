package middlewares_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"formyap.link/middlewares"
	"formyap.link/models"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminService struct {
	users map[string]*models.AdminUser
	pass  map[string]string
}

func (f *fakeAdminService) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error) {
	user, ok := f.users[username]
	if !ok || f.pass[username] != password {
		return nil, services.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, services.ErrAdminUserInactive
	}
	return user, nil
}

func (f *fakeAdminService) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, services.ErrAdminUserNotFound
	}
	return user, nil
}

func (f *fakeAdminService) SetPassword(ctx context.Context, user *models.AdminUser, password string) error {
	return nil
}

func newTestApp() *fiber.App {
	svc := &fakeAdminService{
		users: map[string]*models.AdminUser{
			"editor": {Username: "editor", IsActive: true, CanManageForms: true},
			"viewer": {Username: "viewer", IsActive: true, CanManageSubmissions: true},
		},
		pass: map[string]string{"editor": "s3cret", "viewer": "s3cret"},
	}

	app := fiber.New()
	group := app.Group("/dashboard", middlewares.AdminAuth(svc), middlewares.LoadAdminUser(svc))
	group.Get("/forms", middlewares.RequirePermission(models.PermissionManageForms), func(c *fiber.Ctx) error {
		return c.SendString("forms:" + middlewares.CurrentAdmin(c).Username)
	})
	return app
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestAdminAuth(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		auth   string
		accept string
		want   int
	}{
		{"no credentials", "", "", http.StatusUnauthorized},
		{"wrong password", basic("editor", "nope"), "", http.StatusUnauthorized},
		{"missing permission", basic("viewer", "s3cret"), fiber.MIMEApplicationJSON, http.StatusForbidden},
		{"allowed", basic("editor", "s3cret"), "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/dashboard/forms", nil)
			if tt.auth != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.auth)
			}
			if tt.accept != "" {
				req.Header.Set(fiber.HeaderAccept, tt.accept)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
