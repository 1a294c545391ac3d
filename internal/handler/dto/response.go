package dto

import "github.com/mtlprog/antiptrn/internal/domain"

// CountResponse is the body of /api/count and /api/track.
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}

// NewCountResponse converts a domain.Count to CountResponse.
func NewCountResponse(c domain.Count) CountResponse {
	return CountResponse{Count: int64(c)}
}
