package user

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	ManagerID      *string `json:"manager_id,omitempty"`
	TeamID         *string `json:"team_id,omitempty"`
	IsActive       bool    `json:"is_active"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}
