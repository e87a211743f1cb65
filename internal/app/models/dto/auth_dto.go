package dto

// LoginRequest represents the fixed credential pair
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed bearer token
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}
