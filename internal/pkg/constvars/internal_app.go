package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "PHYSIOCARE_CLI_"
)

const (
	RolePatient = "patient"
	RolePhysio  = "physio"
)

const (
	SessionDriverBolt  = "bolt"
	SessionDriverRedis = "redis"
)

// Preference entries, shared by every session store backend.
const (
	PreferencesBucketName = "settings"
	PreferenceKeyToken    = "token"
	PreferenceKeyUserID   = "usuarioId"
	PreferenceKeyRole     = "rol"
)

const (
	DisplayDateFormat = "02/01/2006"
	RequestDateFormat = "2006-01-02"
)
