package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/propertyfinder/listings-service/internal/utils"
)

const AppName = "listings-service"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	// Auth
	JWTSecret []byte

	// Twilio / SendGrid for reminder notifications. Both optional: when
	// unset the reminder fan-out only writes in-app notifications.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string
	SendGridAPIKey   string
	SendGridFrom     string

	// Behavior flags
	AutoApproveListings bool
	SeedDemoData        bool
}

func LoadConfig() *Config {
	// .env is for local development only; absence is fine.
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, using process environment")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		appUrl = "http://localhost:" + appPort
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}

	sgFrom := os.Getenv("SENDGRID_FROM_EMAIL")
	if sgFrom == "" {
		sgFrom = "no-reply@propertyfinder.example"
	}

	return &Config{
		AppName:             AppName,
		AppPort:             appPort,
		AppUrl:              appUrl,
		JWTSecret:           []byte(jwtSecret),
		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:     os.Getenv("TWILIO_FROM_PHONE"),
		SendGridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:        sgFrom,
		AutoApproveListings: boolEnv("AUTO_APPROVE_LISTINGS"),
		SeedDemoData:        boolEnv("SEED_DEMO_DATA"),
	}
}

func (c *Config) Close() {}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
