package entity

// Anchor marks the page where a survey record starts.
type Anchor struct {
	Page int    `json:"page"`
	Code string `json:"code"`
}
