package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-s storage driver (file, memory, redis, sqlite, postgres)
//	-d database DSN
//	-f state file path
//	-redis redis URL
//	-session client session file path
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-overdue-threshold overdue threshold (e.g., "48h")
//	-office office name used in reminders
//	-seed-demo seed demo keys into an empty storage
//	-log-level log level
//	-server-url server base URL used by the client
//	-refresh-interval client refresh interval
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var requestTimeout time.Duration
	var driver, databaseDSN, statePath, redisURL, sessionPath string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, overdueThreshold time.Duration
	var officeName, logLevel string
	var seedDemo bool
	var serverURL string
	var refreshInterval time.Duration

	fs := flag.NewFlagSet("go-key-keeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&driver, "s", "", "Storage driver: file, memory, redis, sqlite, postgres")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&statePath, "f", "", "State file path")
	fs.StringVar(&redisURL, "redis", "", "Redis URL")
	fs.StringVar(&sessionPath, "session", "", "Client session file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&overdueThreshold, "overdue-threshold", 0, "Overdue threshold (e.g., 48h)")
	fs.StringVar(&officeName, "office", "", "Office name used in reminders")
	fs.BoolVar(&seedDemo, "seed-demo", false, "Seed demo keys into an empty storage")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&serverURL, "server-url", "", "Server base URL used by the client")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Client refresh interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			OverdueThreshold: overdueThreshold,
			OfficeName:       officeName,
			SeedDemoKeys:     seedDemo,
			LogLevel:         logLevel,
		},
		Storage: Storage{
			Driver: driver,
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				StatePath:   statePath,
				SessionPath: sessionPath,
			},
			Redis: Redis{URL: redisURL},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: serverURL,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// ParseFlags parses the process command line. See parseFlags for the list.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}
	if port > 65535 {
		return errors.New("port number must not exceed 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
