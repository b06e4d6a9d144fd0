package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterExecutiveRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	TeamID   string `json:"team_id" binding:"omitempty,uuid"`
}

type AuthResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	ManagerID      *string `json:"manager_id,omitempty"`
	TeamID         *string `json:"team_id,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	AccessToken    string  `json:"access_token,omitempty"`
}
