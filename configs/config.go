package configs

import (
	"fmt"

	"formyap.link/configs/configslog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// AppConfig uygulamanın tüm ortam değişkeni tabanlı ayarlarını toplar.
type AppConfig struct {
	App      AppSettings
	Database DatabaseSettings
	SMTP     SMTPSettings
	Minio    MinioSettings
	Admin    AdminSettings
}

type AppSettings struct {
	Port    string `env:"APP_PORT" envDefault:"3000"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:3000"`
	// Public submit uç noktası için izin verilen origin listesi
	CORSOrigins string `env:"APP_CORS_ORIGINS" envDefault:"*"`
}

type DatabaseSettings struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"formyap"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	TimeZone string `env:"DB_TIMEZONE" envDefault:"Europe/Istanbul"`
}

// DSN gorm postgres sürücüsü için bağlantı dizesini üretir.
func (d DatabaseSettings) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone)
}

type SMTPSettings struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM" envDefault:"no-reply@formyap.link"`
}

// Enabled SMTP host tanımlı değilse bildirim e-postaları gönderilmez.
func (s SMTPSettings) Enabled() bool { return s.Host != "" }

type MinioSettings struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"form-uploads"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

func (m MinioSettings) Enabled() bool { return m.Endpoint != "" }

type AdminSettings struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD"`
}

var cfg *AppConfig

// Load .env dosyasını (varsa) okur ve ortam değişkenlerini AppConfig'e ayrıştırır.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Debug(".env dosyası bulunamadı, sadece ortam değişkenleri kullanılacak.")
	}

	var c AppConfig
	if err := env.Parse(&c); err != nil {
		configslog.Log.Error("Ortam değişkenleri ayrıştırılamadı", zap.Error(err))
		return nil, fmt.Errorf("config yüklenemedi: %w", err)
	}
	cfg = &c
	return cfg, nil
}

// Get yüklenmiş konfigürasyonu döndürür; Load çağrılmamışsa çağırır.
func Get() *AppConfig {
	if cfg == nil {
		c, err := Load()
		if err != nil {
			configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
		}
		return c
	}
	return cfg
}

// IsProduction canlı ortamda çalışılıp çalışılmadığını söyler.
func IsProduction() bool {
	return Get().App.Env == "production"
}
