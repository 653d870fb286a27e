package views

import (
	"embed"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts dashboard public errors
var files embed.FS

const timeLayout = "02.01.2006 15:04"

// NewEngine gömülü şablonlarla fiber view engine'i oluşturur.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("formatTime", func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format(timeLayout)
	})
	engine.AddFunc("formatTimePtr", func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "-"
		}
		return t.Format(timeLayout)
	})
	engine.AddFunc("add", func(a, b int) int { return a + b })
	return engine
}
