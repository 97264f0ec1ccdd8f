package auth

import "marketplace/internal/domain"

type LoginRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
	Trust int         `json:"trust"`
	New   bool        `json:"new"`
}
