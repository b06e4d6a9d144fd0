package dashboard

type SummaryFilterRequest struct {
	Year  int `form:"year" binding:"omitempty,min=2000"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	ExecutiveID  string  `json:"executive_id"`
	Name         string  `json:"name"`
	TotalSales   float64 `json:"total_sales"`
	TargetAmount float64 `json:"target_amount,omitempty"`
	TargetStatus string  `json:"target_status,omitempty"`
}

type TeamSummaryResponse struct {
	Period      string             `json:"period"`
	TotalSales  float64            `json:"total_sales"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}
