package product

type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=150"`
	SKU      string  `json:"sku" binding:"omitempty,max=60"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Category string  `json:"category" binding:"omitempty,max=80"`
}

type UpdateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=150"`
	SKU      string  `json:"sku" binding:"omitempty,max=60"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Category string  `json:"category" binding:"omitempty,max=80"`
}

type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	SKU      *string `json:"sku,omitempty"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}
