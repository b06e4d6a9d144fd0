package notification

type ListFilterRequest struct {
	Year      int    `form:"year"`
	Month     int    `form:"month"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	Link      string `json:"link"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
