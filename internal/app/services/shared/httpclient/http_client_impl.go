package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"physiocare-client/internal/app/config"
	"physiocare-client/internal/app/services/shared/ratelimiter"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client sends JSON requests to the PhysioCare backend and maps failed answers
// to *exceptions.CustomError.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *ratelimiter.RequestLimiter
	Log        *zap.Logger
}

type Request struct {
	Method   string
	Path     string
	Token    string
	Body     interface{}
	Resource string
	// Login maps 4xx answers to a login failure instead of a session error.
	Login bool
}

func NewClient(cfg *config.InternalConfig, limiter *ratelimiter.RequestLimiter, log *zap.Logger) *Client {
	return &Client{
		BaseUrl: cfg.Backend.BaseUrl,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Backend.HTTPTimeoutInSeconds) * time.Second,
		},
		Limiter: limiter,
		Log:     log,
	}
}

// Do sends req and decodes a 2xx body into out when out is not nil.
func (c *Client) Do(ctx context.Context, req *Request, out interface{}) error {
	requestID := utils.GetRequestID(ctx)
	if requestID == "" {
		requestID = utils.NewRequestID()
	}
	url := c.resolve(req.Path)

	var body io.Reader
	if req.Body != nil {
		requestJSON, err := json.Marshal(req.Body)
		if err != nil {
			c.Log.Error("Client.Do error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewBuffer(requestJSON)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		c.Log.Error("Client.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	httpReq.Header.Set(constvars.HeaderUserAgent, constvars.UserAgentPhysioCareClient)
	httpReq.Header.Set(constvars.HeaderXRequestID, requestID)
	if req.Body != nil {
		httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	}
	if req.Token != "" {
		httpReq.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+req.Token)
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		return err
	}

	c.Log.Debug("Client.Do sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, req.Method),
		zap.String(constvars.LoggingURLKey, url),
	)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Log.Error("Client.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("Client.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, req.Resource)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Log.Warn("Client.Do backend answered with error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return c.statusError(req, resp.StatusCode, bodyBytes)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return exceptions.ErrEmptyResponse(req.Resource)
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		c.Log.Error("Client.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, req.Resource)
	}
	return nil
}

func (c *Client) statusError(req *Request, statusCode int, body []byte) error {
	var errorBody responses.ErrorBody
	// Non JSON error pages fall back to the status text.
	_ = json.Unmarshal(body, &errorBody)
	serverMessage := errorBody.ServerMessage()

	switch {
	case req.Login && statusCode >= 400 && statusCode < 500:
		return exceptions.ErrLoginFailed(serverMessage)
	case statusCode == constvars.StatusUnauthorized:
		return exceptions.ErrBackendUnauthorized(serverMessage, req.Resource)
	case statusCode == constvars.StatusNotFound:
		return exceptions.ErrBackendNotFound(serverMessage, req.Resource)
	default:
		return exceptions.ErrBackendStatus(statusCode, serverMessage, req.Resource)
	}
}

func (c *Client) resolve(path string) string {
	return strings.TrimRight(c.BaseUrl, "/") + "/" + strings.TrimLeft(path, "/")
}
