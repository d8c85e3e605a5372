package dto

// HealthResponse is returned by the liveness endpoint
// @Description Service status and the number of stored records per resource
type HealthResponse struct {
	Status  string         `json:"status" example:"healthy"`
	Service string         `json:"service" example:"findash-backend"`
	Version string         `json:"version" example:"1.0.0"`
	Uptime  string         `json:"uptime" example:"1h30m45s"`
	Records map[string]int `json:"records"`
}

// TopicsResponse lists the distinct statement topics
// @Description Distinct topics in first-seen order
type TopicsResponse struct {
	Topics []string `json:"topics"`
}

// NonNil returns s, or an empty slice when s is nil, so that lists always
// encode as a JSON array
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
