package flashmessages

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	flashFormKey    = "flash_form_data"

	// SessionStoreLocalsKey session store'un fiber Locals içindeki anahtarı.
	SessionStoreLocalsKey = "session_store"
)

var ErrNoSessionStore = errors.New("session store bulunamadı")

// FlashMessages bir istekte okunup silinen mesajlar.
type FlashMessages struct {
	Success string
	Error   string
}

func getSession(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(SessionStoreLocalsKey).(*session.Store)
	if !ok || store == nil {
		return nil, ErrNoSessionStore
	}
	return store.Get(c)
}

// SetFlashMessage bir sonraki istekte gösterilecek mesajı session'a yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve session'dan siler.
func GetFlashMessages(c *fiber.Ctx) (FlashMessages, error) {
	var msgs FlashMessages
	sess, err := getSession(c)
	if err != nil {
		return msgs, err
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		msgs.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		msgs.Error = v
		sess.Delete(FlashErrorKey)
	}
	if msgs.Success == "" && msgs.Error == "" {
		return msgs, nil
	}
	return msgs, sess.Save()
}

// SetFlashFormData hatalı gönderimden sonra formu yeniden doldurmak için veriyi saklar.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve siler; yoksa nil.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := getSession(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(flashFormKey)
	_ = sess.Save()

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return data
}
