package dto

type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=6,max=20"`
	Password string `json:"password" binding:"required" validate:"min=6,max=20"`
}

type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserDTO struct {
	ID       uint64   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	IsAdmin  bool     `json:"is_admin"`
}
