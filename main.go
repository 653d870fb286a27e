package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"formyap.link/configs"
	"formyap.link/configs/configslog"
	"formyap.link/pkg/filestorage"
	"formyap.link/pkg/mailer"
	"formyap.link/routes"
	"formyap.link/services"
	"formyap.link/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	submitPath      = "/forms/submit"
	shutdownTimeout = 10 * time.Second
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
	}

	configs.InitDB()
	defer configs.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:      "FormYap",
		Views:        views.NewEngine(),
		BodyLimit:    20 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	formService := services.NewFormService()
	renderService, err := services.NewRenderService(formService, submitPath)
	if err != nil {
		configslog.Log.Fatal("Form şablonları yüklenemedi", zap.Error(err))
	}
	submissionService := services.NewSubmissionService(formService, newMailer(cfg.SMTP), newStorage(cfg.Minio))

	routes.SetupRoutes(app, routes.Services{
		Forms:       formService,
		Submissions: submissionService,
		Render:      renderService,
		AdminUsers:  services.NewAdminUserService(),
		CORSOrigins: cfg.App.CORSOrigins,
	})

	go func() {
		addr := ":" + cfg.App.Port
		configslog.SLog.Infof("Sunucu %s adresinde başlatılıyor (%s)", addr, cfg.App.Env)
		if err := app.Listen(addr); err != nil {
			configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Sunucu kapatılıyor...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
	}
}

func newMailer(s configs.SMTPSettings) mailer.Mailer {
	if !s.Enabled() {
		configslog.SLog.Warn("SMTP_HOST tanımlı değil, bildirim e-postaları gönderilmeyecek.")
		return mailer.NoopMailer{}
	}
	return mailer.NewSMTPMailer(mailer.Config{
		Host:     s.Host,
		Port:     s.Port,
		Username: s.Username,
		Password: s.Password,
		From:     s.From,
	})
}

func newStorage(m configs.MinioSettings) filestorage.FileStorage {
	if !m.Enabled() {
		configslog.SLog.Warn("MINIO_ENDPOINT tanımlı değil, yüklenen dosyalar saklanmayacak.")
		return filestorage.DisabledStorage{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	storage, err := filestorage.NewMinioStorage(ctx, filestorage.Config{
		Endpoint:  m.Endpoint,
		AccessKey: m.AccessKey,
		SecretKey: m.SecretKey,
		Bucket:    m.Bucket,
		UseSSL:    m.UseSSL,
	})
	if err != nil {
		configslog.Log.Fatal("Dosya deposuna bağlanılamadı", zap.String("endpoint", m.Endpoint), zap.Error(err))
	}
	return storage
}

// errorHandler handler'lardan dönen fiber hatalarını sayfaya ya da JSON'a çevirir.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code == fiber.StatusNotFound {
		return routes.NotFound(c)
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenemedi", zap.String("path", c.Path()), zap.Error(err))
	}
	if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMEApplicationJSON {
		return c.Status(code).JSON(fiber.Map{"error": statusMessage(code)})
	}
	return c.Status(code).SendString(statusMessage(code))
}

func statusMessage(code int) string {
	switch code {
	case fiber.StatusUnauthorized:
		return "Giriş yapmanız gerekiyor"
	case fiber.StatusForbidden:
		return "Bu işlem için yetkiniz yok"
	case fiber.StatusBadRequest:
		return "Geçersiz istek"
	}
	return "Bir hata oluştu"
}
