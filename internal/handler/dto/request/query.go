package request

type ListServicesQuery struct {
	Query    *string  `form:"q"`
	PriceMin *float64 `form:"price_min" binding:"omitempty,min=0"`
	PriceMax *float64 `form:"price_max" binding:"omitempty,min=0"`
	Active   *bool    `form:"active"`
}
