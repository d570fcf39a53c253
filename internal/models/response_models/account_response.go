package response_models

type SignUpResponse struct {
	ID string `json:"id"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
