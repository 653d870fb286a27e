package configslog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) global logger.
// InitLogger çağrılmadan önce de güvenle kullanılabilmesi için Nop ile başlar.
var Log = zap.NewNop()

// SLog printf tarzı global logger.
var SLog = Log.Sugar()

// InitLogger ortam değişkenlerine göre global logger'ı kurar.
//
//	LOG_LEVEL  debug|info|warn|error (varsayılan info)
//	LOG_FORMAT console|json          (varsayılan console)
//	LOG_OUTPUT stdout|file|both      (varsayılan stdout)
//	LOG_FILE   dosya yolu            (varsayılan logs/app.log)
func InitLogger() {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	format := strings.ToLower(os.Getenv("LOG_FORMAT"))
	output := strings.ToLower(os.Getenv("LOG_OUTPUT"))
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "logs/app.log"
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	stdoutEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	if format == "json" {
		jsonConfig := encoderConfig
		jsonConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		stdoutEncoder = zapcore.NewJSONEncoder(jsonConfig)
	}

	var cores []zapcore.Core
	if output != "file" {
		cores = append(cores, zapcore.NewCore(stdoutEncoder, zapcore.AddSync(os.Stdout), level))
	}
	if output == "file" || output == "both" {
		fileWriter, err := openLogFile(logFile)
		if err != nil {
			// Dosya açılamazsa stdout'a düş
			cores = append(cores, zapcore.NewCore(stdoutEncoder, zapcore.AddSync(os.Stdout), level))
		} else {
			fileConfig := encoderConfig
			fileConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileConfig), zapcore.AddSync(fileWriter), level))
		}
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	SLog = Log.Sugar()
	zap.ReplaceGlobals(Log)

	SLog.Infof("Logger başlatıldı: seviye=%s, çıktı=%s", level.String(), outputName(output))
}

// SyncLogger tamponlanmış log kayıtlarını yazar. main içinde defer edilir.
func SyncLogger() {
	_ = Log.Sync()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func outputName(output string) string {
	if output == "" {
		return "stdout"
	}
	return output
}
