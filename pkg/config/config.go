package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds the runtime settings. Table names and AWS credentials stay in the
// persistence layer's own env handling.

type App struct {
	// Network
	Port int `envconfig:"PORT" default:"8080"`
	// Frontend redirect targets embedded in invoices
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
	// Xendit
	XenditSecretKey     string `envconfig:"XENDIT_SECRET_KEY"`
	XenditCallbackToken string `envconfig:"XENDIT_CALLBACK_TOKEN"`
	// Resend
	ResendAPIKey string `envconfig:"RESEND_API_KEY"`
	EmailFrom    string `envconfig:"EMAIL_FROM" default:"JelajahSabang <noreply@jelajahsabang.com>"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
