package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	DBMaxConns     int32
	MigrationsPath string

	JWTSecret         string
	JWTIssuer         string
	FinanceWriteRoles []string
	FinanceReadRoles  []string

	// Payroll settlement code. A bcrypt hash wins over the plain value when both are set.
	PayrollApprovalCode     string
	PayrollApprovalCodeHash string

	LowCashThreshold           decimal.Decimal
	SalaryObligationWindowDays int
	BusinessLocation           *time.Location
	SystemActorID              string

	RateLimit          string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string

	TelegramBotToken    string
	TelegramAlertChatID int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "retail-finance-core")
	viper.SetDefault("FINANCE_WRITE_ROLES", "admin,accountant")
	viper.SetDefault("FINANCE_READ_ROLES", "admin,accountant,manager")
	viper.SetDefault("PAYROLL_APPROVAL_CODE", "")
	viper.SetDefault("PAYROLL_APPROVAL_CODE_HASH", "")
	viper.SetDefault("LOW_CASH_THRESHOLD", "5000.00")
	viper.SetDefault("SALARY_OBLIGATION_WINDOW_DAYS", 30)
	viper.SetDefault("BUSINESS_TIMEZONE", "UTC")
	viper.SetDefault("SYSTEM_ACTOR_ID", "system-scheduler")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_ALERT_CHAT_ID", 0)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FinanceWriteRoles = splitList(viper.GetString("FINANCE_WRITE_ROLES"))
	cfg.FinanceReadRoles = splitList(viper.GetString("FINANCE_READ_ROLES"))
	if len(cfg.FinanceWriteRoles) == 0 {
		log.Println("Warning: FINANCE_WRITE_ROLES is empty. No caller will be able to record transactions.")
	}

	cfg.PayrollApprovalCode = viper.GetString("PAYROLL_APPROVAL_CODE")
	cfg.PayrollApprovalCodeHash = viper.GetString("PAYROLL_APPROVAL_CODE_HASH")
	if cfg.PayrollApprovalCode == "" && cfg.PayrollApprovalCodeHash == "" {
		log.Println("Warning: no payroll approval code configured. Payroll settlement is disabled.")
	}

	thresholdStr := viper.GetString("LOW_CASH_THRESHOLD")
	threshold, err := decimal.NewFromString(thresholdStr)
	if err != nil {
		threshold = decimal.NewFromInt(5000)
		log.Printf("Warning: Invalid value for LOW_CASH_THRESHOLD ('%s'). Defaulting to %s.\n", thresholdStr, threshold.StringFixed(2))
	}
	cfg.LowCashThreshold = threshold

	cfg.SalaryObligationWindowDays = viper.GetInt("SALARY_OBLIGATION_WINDOW_DAYS")
	if cfg.SalaryObligationWindowDays <= 0 {
		cfg.SalaryObligationWindowDays = 30
		log.Printf("Warning: SALARY_OBLIGATION_WINDOW_DAYS must be positive. Defaulting to %d.\n", cfg.SalaryObligationWindowDays)
	}

	tz := viper.GetString("BUSINESS_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
		log.Printf("Warning: Unknown BUSINESS_TIMEZONE ('%s'). Defaulting to UTC.\n", tz)
	}
	cfg.BusinessLocation = loc
	cfg.SystemActorID = viper.GetString("SYSTEM_ACTOR_ID")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.TelegramBotToken = viper.GetString("TELEGRAM_BOT_TOKEN")
	cfg.TelegramAlertChatID = viper.GetInt64("TELEGRAM_ALERT_CHAT_ID")
	if cfg.TelegramBotToken != "" && cfg.TelegramAlertChatID == 0 {
		log.Println("Warning: TELEGRAM_BOT_TOKEN set without TELEGRAM_ALERT_CHAT_ID. Alerts will only be logged.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
