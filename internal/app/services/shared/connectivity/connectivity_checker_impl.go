package connectivity

import (
	"context"
	"net"
	"net/url"
	"physiocare-client/internal/app/config"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type connectivityChecker struct {
	enabled bool
	address string
	timeout time.Duration
	dialer  *net.Dialer
	log     *zap.Logger
}

// NewConnectivityChecker dials the backend host before a call is sent.
func NewConnectivityChecker(cfg *config.InternalConfig, log *zap.Logger) (contracts.ConnectivityChecker, error) {
	address, err := hostAddress(cfg.Backend.BaseUrl)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Backend.ConnectivityTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &connectivityChecker{
		enabled: cfg.Backend.ConnectivityCheck,
		address: address,
		timeout: timeout,
		dialer:  &net.Dialer{},
		log:     log,
	}, nil
}

func (c *connectivityChecker) CheckConnection(ctx context.Context) error {
	if !c.enabled {
		return nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(dialCtx, "tcp", c.address)
	if err != nil {
		c.log.Warn("connectivityChecker.CheckConnection backend unreachable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingHostKey, c.address),
			zap.Error(err),
		)
		return exceptions.ErrNoConnection(err, c.address)
	}
	conn.Close()
	return nil
}

func hostAddress(baseUrl string) (string, error) {
	parsed, err := url.Parse(baseUrl)
	if err != nil || parsed.Hostname() == "" {
		return "", exceptions.ErrInvalidBaseURL(err, baseUrl)
	}

	port := parsed.Port()
	if port == "" {
		port = "80"
		if parsed.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(parsed.Hostname(), port), nil
}
