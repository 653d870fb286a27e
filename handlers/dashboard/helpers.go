package handlers

import (
	"strconv"
	"strings"

	"formyap.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// paramID ":id" parametresini okur. Geçersizse hata mesajını flash'lar ve false döner.
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return 0, false
	}
	return uint(id), true
}

// formIDs toplu işlemlerde gönderilen "ids" değerlerini (tekrarlı ya da virgüllü) toplar.
func formIDs(c *fiber.Ctx) []uint {
	var raw []string
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		raw = append(raw, mf.Value["ids"]...)
		raw = append(raw, mf.Value["ids[]"]...)
	} else {
		for _, key := range []string{"ids", "ids[]"} {
			for _, v := range c.Request().PostArgs().PeekMulti(key) {
				raw = append(raw, string(v))
			}
		}
	}

	seen := make(map[uint]bool, len(raw))
	ids := make([]uint, 0, len(raw))
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil || n == 0 || seen[uint(n)] {
				continue
			}
			seen[uint(n)] = true
			ids = append(ids, uint(n))
		}
	}
	return ids
}

func isChecked(c *fiber.Ctx, key string) bool {
	v := c.FormValue(key)
	return v == "true" || v == "on" || v == "1"
}
