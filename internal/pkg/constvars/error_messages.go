package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"oneof":            "must be one of [%s]",
	"appointment_date": "must be a date formatted as YYYY-MM-DD or RFC 3339",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the server is taking too long to respond"
	ErrClientNoConnection                  = "no connection"
	ErrClientNotLoggedIn                   = "not logged in"
	ErrClientSessionClosed                 = "session closed, please login again"
	ErrClientLoginUnknownError             = "unknown error"
	ErrClientEmptyResponse                 = "empty response from server"
	ErrClientRecordNotFound                = "no medical record"
	ErrClientAppointmentNotFound           = "appointment not found or empty"
	ErrClientNoPhysioAppointments          = "no appointments found for this physio"
	ErrClientNoPhysios                     = "no physiotherapists found"
	ErrClientTooManyRequests               = "too many requests, try again later"
	ErrClientNotAuthorized                 = "you can't access this feature"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevRateLimitWait          = "client rate limiter refused the request"
	ErrDevNoConnection           = "backend host %s is unreachable"
	ErrDevSessionMissingToken    = "session holds no token"
	ErrDevSessionTokenExpired    = "session token already expired"
	ErrDevSessionUnauthorized    = "backend answered 401 for %s, session invalidated"
	ErrDevLoginNoToken           = "login response carries no token"
	ErrDevInvalidRole            = "role %s is not allowed for this operation"
	ErrDevTokenMalformed         = "cannot decode token claims"
	ErrDevInvalidBaseURL         = "invalid backend base url %s"

	// Backend messages
	ErrDevBackendGetResource    = "failed to get %s from PhysioCare backend"
	ErrDevBackendCreateResource = "failed to create %s on PhysioCare backend"
	ErrDevBackendDeleteResource = "failed to delete %s on PhysioCare backend"
	ErrDevBackendNotFound       = "%s not found on PhysioCare backend"
	ErrDevBackendNotOk          = "PhysioCare backend answered ok=false for %s"
	ErrDevBackendDecodeResponse = "failed to decode %s response from PhysioCare backend"
	ErrDevBackendEmptyResponse  = "empty %s response from PhysioCare backend"

	// Session store messages
	ErrDevBoltOpen     = "failed to open preferences file %s"
	ErrDevBoltRead     = "failed to read preferences"
	ErrDevBoltWrite    = "failed to write preferences"
	ErrDevRedisGetData = "failed to get data from redis"
	ErrDevRedisSetData = "failed to set data to redis"
	ErrDevRedisDelete  = "failed to delete data from redis"
)
