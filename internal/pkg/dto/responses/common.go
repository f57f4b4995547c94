package responses

// ErrorBody is the loose shape of a failed backend answer.
type ErrorBody struct {
	Ok      *bool  `json:"ok,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Mensaje string `json:"mensaje,omitempty"`
}

func (e ErrorBody) ServerMessage() string {
	switch {
	case e.Error != "":
		return e.Error
	case e.Message != "":
		return e.Message
	default:
		return e.Mensaje
	}
}
