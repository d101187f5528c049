package dto

// StatsResponse is the dashboard rollup: one count per collection.
type StatsResponse struct {
	Users        int64 `json:"users"`
	Students     int64 `json:"students"`
	Startups     int64 `json:"startups"`
	Applications int64 `json:"applications"`
	Messages     int64 `json:"messages"`
	Events       int64 `json:"events"`
	Reviews      int64 `json:"reviews"`
}
