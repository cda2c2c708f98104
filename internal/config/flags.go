package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// ParseFlags parses the service flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-token expected path token
//	-subscription-url remote subscription URL
//	-user-agent User-Agent sent to the subscription provider
//	-request-timeout upstream fetch timeout (e.g., "30s", "1m")
//	-o override YAML file path
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var token string
	var subscriptionURL string
	var userAgent string
	var requestTimeout time.Duration
	var overridePath string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("clash-merger", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&token, "token", "", "Expected path token")
	fs.StringVar(&subscriptionURL, "subscription-url", "", "Remote subscription URL")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent sent to the subscription provider")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Upstream fetch timeout (e.g., 30s, 1m)")
	fs.StringVar(&overridePath, "o", "", "Override YAML file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App:  App{LogLevel: logLevel},
		Auth: Auth{Token: token},
		Subscription: Subscription{
			URL:            subscriptionURL,
			UserAgent:      userAgent,
			RequestTimeout: requestTimeout,
			OverridePath:   overridePath,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds all interfaces. Any other host must be "localhost" or
// a valid IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
