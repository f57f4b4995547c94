package responses

type Login struct {
	Token  string `json:"token,omitempty"`
	Role   string `json:"rol,omitempty"`
	UserID string `json:"usuarioId,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (l *Login) HasToken() bool {
	return l != nil && l.Token != ""
}
