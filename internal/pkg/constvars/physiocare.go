package constvars

// Backend resources, relative to the configured base URL.
const (
	ResourceLogin                 = "auth/login"
	ResourceRecords               = "records"
	ResourceRecordByPatient       = "records/patient/%s"
	ResourceAppointmentsByPatient = "records/appointments/patients/%s"
	ResourceAppointment           = "records/appointments/%s"
	ResourceAppointmentsByPhysio  = "records/appointments/physio/%s"
	ResourcePhysios               = "physios"
	ResourceRecordAppointments    = "records/%s/appointments"
)

// Resource names used in error and log messages.
const (
	ResourceNameLogin       = "login"
	ResourceNameRecord      = "record"
	ResourceNameAppointment = "appointment"
	ResourceNamePhysio      = "physio"
	ResourceNameSession     = "session"
	ResourceNamePreferences = "preferences"
)
