package dto

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Display precision for decimal fields.
const (
	PricePrecision   int32 = 2
	PercentPrecision int32 = 2
)
