package dto

// MovementResponse is one row of the movement history report.
// Product falls back to "-" when the referenced product row is gone;
// the join must tolerate that even though no delete operation exists.
type MovementResponse struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	Product     string `json:"product"`
	Kind        string `json:"kind"`
	Quantity    int    `json:"quantity"`
	StockBefore int    `json:"stock_before"`
	StockAfter  int    `json:"stock_after"`
	Note        string `json:"note"`
	SaleID      *uint  `json:"sale_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type MovementListResponse struct {
	Data  []MovementResponse `json:"data"`
	Total int64              `json:"total"`
}
