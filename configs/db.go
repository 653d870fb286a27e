package configs

import (
	"time"

	"formyap.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB PostgreSQL bağlantısını açar ve bağlantı havuzunu ayarlar.
func InitDB() {
	settings := Get().Database

	gormLogLevel := logger.Warn
	if !IsProduction() {
		gormLogLevel = logger.Info
	}

	var err error
	db, err = gorm.Open(postgres.Open(settings.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Benzersiz index ihlalleri gorm.ErrDuplicatedKey olarak döner
		TranslateError: true,
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı",
			zap.String("host", settings.Host),
			zap.Int("port", settings.Port),
			zap.String("database", settings.Name),
			zap.Error(err),
		)
	}

	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Fatal("sql.DB alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu: %s:%d/%s", settings.Host, settings.Port, settings.Name)
}

// GetDB global gorm bağlantısını döndürür.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("Veritabanı başlatılmadı, önce InitDB çağrılmalı")
	}
	return db
}

// SetDB testlerde ve araçlarda hazır bir bağlantıyı global olarak atar.
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı.")
}
