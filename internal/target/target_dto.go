package target

type SetTargetRequest struct {
	ExecutiveID string  `json:"executive_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
}

type UpdateTargetRequest struct {
	Amount    float64 `json:"amount" binding:"gte=0"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
}

type TeamFilterRequest struct {
	Year  int `form:"year"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

type TargetResponse struct {
	ID             string  `json:"id"`
	ExecutiveID    string  `json:"executive_id"`
	Amount         float64 `json:"amount"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Period         string  `json:"period"`
	AchievedAmount float64 `json:"achieved_amount"`
	Status         string  `json:"status"`
}
