package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingURLKey              = "url"
	LoggingStatusCodeKey       = "status_code"
	LoggingPatientIDKey        = "patient_id"
	LoggingPhysioIDKey         = "physio_id"
	LoggingRecordIDKey         = "record_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingUserIDKey           = "user_id"
	LoggingRoleKey             = "role"
	LoggingRecordCountKey      = "record_count"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingFutureCountKey      = "future_count"
	LoggingPastCountKey        = "past_count"
	LoggingPhysioCountKey      = "physio_count"
	LoggingSessionDriverKey    = "session_driver"
	LoggingRedisKey            = "redis_key"
	LoggingPreferencesFileKey  = "preferences_file"
	LoggingHostKey             = "host"
)
