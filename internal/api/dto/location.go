package dto

type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Period      string    `json:"period"`
	Dynasty     string    `json:"dynasty,omitempty"`
	Coordinates []float64 `json:"coordinates"`
	Tags        []string  `json:"tags"`
}
