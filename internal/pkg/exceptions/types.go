package exceptions

import (
	"fmt"
	"net/http"
	"physiocare-client/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed).withKind(ErrKindValidation)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotParseJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRateLimited = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRateLimitWait)
	}
	ErrInvalidRole = func(role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevInvalidRole, role))
	}

	ErrInvalidBaseURL = func(err error, baseUrl string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevInvalidBaseURL, baseUrl))
	}

	// Session
	ErrNoConnection = func(err error, host string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientNoConnection, fmt.Sprintf(constvars.ErrDevNoConnection, host)).withKind(ErrKindNoConnection)
	}
	ErrNotLoggedIn = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionMissingToken).withKind(ErrKindUnauthenticated)
	}
	ErrTokenExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientSessionClosed, constvars.ErrDevSessionTokenExpired).withKind(ErrKindUnauthenticated)
	}
	ErrTokenMalformed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientSessionClosed, constvars.ErrDevTokenMalformed).withKind(ErrKindUnauthenticated)
	}
	ErrSessionExpired = func(resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientSessionClosed, fmt.Sprintf(constvars.ErrDevSessionUnauthorized, resource)).withKind(ErrKindUnauthorized)
	}
	ErrLoginFailed = func(serverMessage string) *CustomError {
		clientMessage := serverMessage
		if clientMessage == "" {
			clientMessage = constvars.ErrClientLoginUnknownError
		}
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, clientMessage, constvars.ErrDevLoginNoToken).withKind(ErrKindLogin)
	}

	// Preferences file
	ErrBoltOpen = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevBoltOpen, path))
	}
	ErrBoltRead = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBoltRead)
	}
	ErrBoltWrite = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBoltWrite)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, err.Error(), constvars.ErrDevSendHTTPRequest)
	}

	// Backend
	ErrBackendStatus = func(statusCode int, serverMessage, resource string) *CustomError {
		clientMessage := serverMessage
		if clientMessage == "" {
			clientMessage = http.StatusText(statusCode)
		}
		return BuildNewCustomError(nil, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendGetResource, resource))
	}
	ErrBackendUnauthorized = func(serverMessage, resource string) *CustomError {
		clientMessage := serverMessage
		if clientMessage == "" {
			clientMessage = constvars.ErrClientSessionClosed
		}
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, clientMessage, fmt.Sprintf(constvars.ErrDevSessionUnauthorized, resource)).withKind(ErrKindUnauthorized)
	}
	ErrBackendNotFound = func(serverMessage, resource string) *CustomError {
		clientMessage := serverMessage
		if clientMessage == "" {
			clientMessage = http.StatusText(constvars.StatusNotFound)
		}
		return BuildNewCustomError(nil, constvars.StatusNotFound, clientMessage, fmt.Sprintf(constvars.ErrDevBackendNotFound, resource)).withKind(ErrKindNotFound)
	}
	ErrBackendNotOk = func(clientMessage, resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusOK, clientMessage, fmt.Sprintf(constvars.ErrDevBackendNotOk, resource))
	}
	ErrEmptyResponse = func(resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusOK, constvars.ErrClientEmptyResponse, fmt.Sprintf(constvars.ErrDevBackendEmptyResponse, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevBackendDecodeResponse, resource))
	}
)
