package response

import "electripro/internal/usecase"

type LoginResponse struct {
	Token   string `json:"token"`
	OwnerID string `json:"owner_id"`
}

func FromSession(s usecase.Session) LoginResponse {
	return LoginResponse{Token: s.Token, OwnerID: s.OwnerID}
}
