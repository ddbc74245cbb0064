package domain

import "time"

// GenerateRequest asks for Count new ids with Prefix. Count defaults to 1.
type GenerateRequest struct {
	Prefix string `json:"prefix" binding:"required"`
	Count  int    `json:"count" binding:"omitempty,min=1"`
}

// GenerateResponse lists newly minted ids.
type GenerateResponse struct {
	Profile string   `json:"profile"`
	IDs     []string `json:"ids"`
}

// ParseBatchRequest carries ids to parse. Each entry must be a well formed
// id for the service's profile.
type ParseBatchRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,max=1000,dive,prefixid"`
}

// ParsedID is the decoded form of an id.
type ParsedID struct {
	ID          string    `json:"id"`
	Prefix      string    `json:"prefix"`
	UUID        string    `json:"uuid"`
	Timestamp   time.Time `json:"timestamp"`
	TimestampMs int64     `json:"timestamp_ms"`
}

// ValidateResponse reports whether an id is valid and, if not, why.
type ValidateResponse struct {
	ID     string `json:"id"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
