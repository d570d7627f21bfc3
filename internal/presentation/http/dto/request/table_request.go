package request

// TableRequest represents a dining table create/update request
type TableRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=80"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}
