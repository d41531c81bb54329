package models

// ProviderExercise is one exercise as returned by the external exercise
// provider. Equipment and Target are catalog names resolved to rows during
// seeding.
type ProviderExercise struct {
	Name         string   `json:"name"`
	GifURL       string   `json:"gifUrl"`
	Instructions []string `json:"instructions"`
	Equipment    string   `json:"equipment"`
	Target       string   `json:"target"`
}
