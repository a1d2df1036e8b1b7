package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted either as strings ("30s") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		AccessTokenDuration Duration `json:"access_token_duration"`
		EmailTokenDuration  Duration `json:"email_token_duration"`
		ResetTokenDuration  Duration `json:"reset_token_duration"`
		PasswordHashCost    int      `json:"password_hash_cost"`
		BaseURL             string   `json:"base_url"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MeRateLimit    int      `json:"me_rate_limit"`
	} `json:"server,omitempty"`

	Adapter struct {
		Avatar struct {
			Provider       string     `json:"provider"`
			RequestTimeout Duration   `json:"request_timeout"`
			Cloudinary     Cloudinary `json:"cloudinary"`
			S3             S3         `json:"s3"`
		} `json:"avatar,omitempty"`
		Mail struct {
			Provider    string   `json:"provider"`
			FromAddress string   `json:"from_address"`
			FromName    string   `json:"from_name"`
			SMTP        SMTP     `json:"smtp"`
			SendGrid    SendGrid `json:"sendgrid"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		MailQueue     string `json:"mail_queue"`
		MailQueueSize int    `json:"mail_queue_size"`
		AMQP          AMQP   `json:"amqp"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("read json config %s: %w", jsonFilePath, err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(raw, &jsonCfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", jsonFilePath, err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			AccessTokenDuration: time.Duration(jsonCfg.App.AccessTokenDuration),
			EmailTokenDuration:  time.Duration(jsonCfg.App.EmailTokenDuration),
			ResetTokenDuration:  time.Duration(jsonCfg.App.ResetTokenDuration),
			PasswordHashCost:    jsonCfg.App.PasswordHashCost,
			BaseURL:             jsonCfg.App.BaseURL,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MeRateLimit:    jsonCfg.Server.MeRateLimit,
		},
		Adapter: Adapter{
			Avatar: Avatar{
				Provider:       jsonCfg.Adapter.Avatar.Provider,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Avatar.RequestTimeout),
				Cloudinary:     jsonCfg.Adapter.Avatar.Cloudinary,
				S3:             jsonCfg.Adapter.Avatar.S3,
			},
			Mail: Mail{
				Provider:    jsonCfg.Adapter.Mail.Provider,
				FromAddress: jsonCfg.Adapter.Mail.FromAddress,
				FromName:    jsonCfg.Adapter.Mail.FromName,
				SMTP:        jsonCfg.Adapter.Mail.SMTP,
				SendGrid:    jsonCfg.Adapter.Mail.SendGrid,
			},
		},
		Workers: Workers{
			MailQueue:     jsonCfg.Workers.MailQueue,
			MailQueueSize: jsonCfg.Workers.MailQueueSize,
			AMQP:          jsonCfg.Workers.AMQP,
		},
	}

	return cfg, nil
}

// Duration reads either a time.ParseDuration string ("30s") or an integer
// number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(b, &nanos); err != nil {
		return fmt.Errorf("duration must be a string or an integer: %s", b)
	}
	*d = Duration(nanos)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
