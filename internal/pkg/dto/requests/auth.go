package requests

type Login struct {
	Username string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}
