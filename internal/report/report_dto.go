package report

type TeamSalesFilterRequest struct {
	Year   int    `form:"year" binding:"required"`
	Month  int    `form:"month" binding:"required,min=1,max=12"`
	TeamID string `form:"team_id" binding:"omitempty,uuid"`
}

// Row is one line item of one sale, flattened for tabular output.
type Row struct {
	ReceiptNo     string
	Date          string
	ExecutiveName string
	Location      string
	ProductID     string
	Quantity      int
	PricePerUnit  float64
	Subtotal      float64
}

// Document is a rendered report ready to stream to the client.
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}
