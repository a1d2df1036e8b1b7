package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
)

var (
	errEmptyPort   = errors.New("port is required")
	errPortRange   = errors.New("port must be in range 1-65535")
	errInvalidHost = errors.New("host must be an IP address or localhost")
)

// NetAddress is a flag.Value accepting host:port. An empty host binds every
// interface.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return err
	}
	if rawPort == "" {
		return errEmptyPort
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errInvalidHost
	}

	a.Host, a.Port = host, port
	return nil
}

// ParseFlags reads the process command line into a partial config.
// Unset flags stay zero so lower-priority sources can fill them.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		cfg                StructuredConfig
		httpAddr, grpcAddr NetAddress
	)

	fs.Var(&httpAddr, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file (same as -c)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT issuer")
	fs.DurationVar(&cfg.App.AccessTokenDuration, "access-token-duration", 0, "access token lifetime, e.g. 30m")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout, e.g. 30s")
	fs.StringVar(&cfg.App.BaseURL, "base-url", "", "public base URL for links in emails")
	fs.StringVar(&cfg.Adapter.Avatar.Provider, "avatar-provider", "", "avatar storage: cloudinary or s3")
	fs.StringVar(&cfg.Adapter.Mail.Provider, "mail-provider", "", "mail transport: smtp, sendgrid or log")
	fs.StringVar(&cfg.Workers.MailQueue, "mail-queue", "", "mail queue: memory or amqp")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()

	return &cfg, nil
}
