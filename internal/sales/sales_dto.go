package sales

type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type RecordSaleRequest struct {
	Date     string            `json:"date" binding:"required"`
	Location string            `json:"location" binding:"required,max=150"`
	Remarks  string            `json:"remarks" binding:"omitempty,max=1000"`
	Items    []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

type SalesFilterRequest struct {
	Date  string `form:"date"`
	Year  int    `form:"year"`
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
}

type TeamSalesFilterRequest struct {
	Date   string `form:"date"`
	Year   int    `form:"year"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
	TeamID string `form:"team_id" binding:"omitempty,uuid"`
}

type SaleItemResponse struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name,omitempty"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	Subtotal     float64 `json:"subtotal"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	ReceiptNo     string             `json:"receipt_no"`
	ExecutiveID   string             `json:"executive_id"`
	ExecutiveName string             `json:"executive_name,omitempty"`
	Date          string             `json:"date"`
	Amount        float64            `json:"amount"`
	Location      string             `json:"location"`
	Remarks       string             `json:"remarks,omitempty"`
	Items         []SaleItemResponse `json:"items"`
}
