package attendance

type MarkRequest struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// MonthFilterRequest defaults to the current month when either field is
// omitted; the handler fills the blanks.
type MonthFilterRequest struct {
	Year  int `form:"year" binding:"omitempty,min=2000"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

type AttendanceResponse struct {
	ID          string `json:"id"`
	ExecutiveID string `json:"executive_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
}
