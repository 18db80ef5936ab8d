// README: Weather lookup result shape.
package weather

// Data is the simplified conditions payload served to clients.
type Data struct {
	Temperature int     `json:"temperature"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity,omitempty"`
	WindSpeed   float64 `json:"windSpeed,omitempty"`
	Description string  `json:"description,omitempty"`
}
