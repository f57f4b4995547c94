package constvars

const (
	ResponseUnknown = "unknown"
)

// Messages rendered by the view-state holders.
const (
	MessageNoMedicalRecord           = "no medical record"
	MessageNoAppointmentsRegistered  = "no appointments registered"
	MessageNoUpcomingAppointments    = "no upcoming appointments"
	MessageCouldNotDelete            = "could not delete: %s"
	MessageCouldNotFetchAppointments = "could not retrieve appointments"
	MessageCouldNotLoadAppointment   = "could not load appointment"
	MessageNoRecordsFound            = "no records found"
	MessageNoMedicalHistory          = "no medical history registered"
	MessageInvalidDate               = "invalid date"
	MessageUnknownPhysio             = "unknown"
)

const (
	LoginSuccessMessage             = "successfully login"
	LogoutSuccessMessage            = "successfully logout"
	DeleteAppointmentSuccessMessage = "appointment deleted"
	CreateAppointmentSuccessMessage = "appointment created"
)
