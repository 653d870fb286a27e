package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession flash mesajlarında kullanılan cookie tabanlı session store'u oluşturur.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   IsProduction(),
		CookieSameSite: "Lax",
		KeyLookup:      "cookie:formyap_session",
	})
}
