package leave

type ApplyLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required,max=1000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LeaveResponse struct {
	ID            string `json:"id"`
	ExecutiveID   string `json:"executive_id"`
	ExecutiveName string `json:"executive_name,omitempty"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
