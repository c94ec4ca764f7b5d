package domain

// PredictionResult is the success body of both inference endpoints.
// Probabilities are rounded to two decimals by the service; the rounded
// values need not sum exactly to 1.
type PredictionResult struct {
	PredictedClass string             `json:"predicted_class"`
	Probabilities  map[string]float64 `json:"probabilities"`
}
