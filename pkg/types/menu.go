package types

// MenuItem is one entry of the static menu feed. Prices are decimal
// strings exactly as the upstream menu publishes them.
type MenuItem struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Price             string   `json:"price"`
	SpicinessLevel    int      `json:"spicinessLevel"`
	SweetnessLevel    int      `json:"sweetnessLevel"`
	DietaryPreference []string `json:"dietaryPreference"`
	HealthinessScore  int      `json:"healthinessScore"`
	Popularity        int      `json:"popularity"`
	CaffeineLevel     string   `json:"caffeineLevel"`
	SufficientFor     int      `json:"sufficientFor"`
	Image             string   `json:"image"`
}
