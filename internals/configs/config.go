package configs

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"skm_backend/internals/log"
)

const (
	AppTimezone         = "Asia/Jakarta"
	BackupRetentionDays = 30
)

var (
	JWTSecret string
	JWTExpiry = 24 * time.Hour

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	BackupDir  = "backups"
	BackupCron = "0 0 1 * *"
	ReportCron = "0 0 1 * *"

	RateLimitEnabled = true
	CaptchaSecret    string

	SeedSuperAdminEmail    string
	SeedSuperAdminPassword string
	SeedSuperAdminName     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in production, menggunakan ENV dari sistem")
	}

	log.SetLevel(GetEnv("LOG_LEVEL", "info"))

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	SMTPHost = GetEnv("SMTP_HOST")
	SMTPPort = GetEnvInt("SMTP_PORT", 587)
	SMTPUser = GetEnv("SMTP_USER")
	SMTPPassword = GetEnv("SMTP_PASSWORD")
	SMTPFrom = GetEnv("SMTP_FROM_EMAIL", SMTPUser)
	if SMTPHost == "" {
		log.Println("⚠️ SMTP_HOST belum diset, email laporan & backup tidak akan terkirim")
	}

	BackupDir = GetEnv("BACKUP_DIR", "backups")
	BackupCron = GetEnv("BACKUP_CRON", "0 0 1 * *")
	ReportCron = GetEnv("REPORT_CRON", "0 0 1 * *")

	RateLimitEnabled = GetEnvBool("RATE_LIMIT_ENABLED", true)
	CaptchaSecret = GetEnv("CAPTCHA_SECRET")

	SeedSuperAdminEmail = GetEnv("SEED_SUPERADMIN_EMAIL")
	SeedSuperAdminPassword = GetEnv("SEED_SUPERADMIN_PASSWORD")
	SeedSuperAdminName = GetEnv("SEED_SUPERADMIN_NAME", "Super Admin")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Location mengembalikan zona waktu aplikasi. Fallback ke offset tetap +07:00
// kalau tzdata tidak tersedia di container.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppTimezone)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if GetEnvBool("DB_LOG_QUERIES", false) {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Infof("[DB] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Warnf("[DB] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Errorf("[DB] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !isRecordNotFound(err) && l.LogLevel >= gormLogger.Error:
		log.Errorf("[DB] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Warnf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Infof("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}

// record not found bukan error operasional; service yang memutuskan 404.
func isRecordNotFound(err error) bool {
	return err != nil && err.Error() == gormLogger.ErrRecordNotFound.Error()
}
