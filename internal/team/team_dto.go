package team

type CreateTeamRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=120"`
	MemberIDs []string `json:"member_ids" binding:"omitempty,dive,uuid"`
}

type UpdateMembersRequest struct {
	MemberIDs []string `json:"member_ids" binding:"required,dive,uuid"`
}

type MemberResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type TeamResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	ManagerID string           `json:"manager_id"`
	Members   []MemberResponse `json:"members"`
	CreatedAt string           `json:"created_at"`
}
