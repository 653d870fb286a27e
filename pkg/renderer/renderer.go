package renderer

import (
	"net/http"

	"formyap.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View şablonlarında kullanılan flash anahtarları
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render şablonu verilen layout ile render eder. Durum kodu verilmezse 200.
func Render(c *fiber.Ctx, template, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals("csrf")
	}
	if _, ok := data["UserName"]; !ok {
		data["UserName"] = c.Locals("userName")
	}
	if layout == "" {
		return c.Status(code).Render(template, data)
	}
	return c.Status(code).Render(template, data, layout)
}

// SetFlashMessages okunmuş flash mesajlarını view verisine ekler.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashMessages) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}
