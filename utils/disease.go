package utils

type RiskLevel string

const (
	RiskHigh     RiskLevel = "high"
	RiskModerate RiskLevel = "moderate"
	RiskLow      RiskLevel = "low"
)

var riskMessages = map[RiskLevel]string{
	RiskHigh:     "⚠️ High Risk of fungal diseases.",
	RiskModerate: "⚠️ Moderate Risk.",
	RiskLow:      "✅ Low Risk.",
}

// Message is the advisory text shown to farmers.
func (r RiskLevel) Message() string {
	return riskMessages[r]
}

// KelvinToCelsius converts an OpenWeatherMap temperature.
func KelvinToCelsius(k float64) float64 {
	return k - 273.15
}

// ClassifyDiseaseRisk buckets fungal disease risk from relative humidity (%) and temperature (°C).
func ClassifyDiseaseRisk(humidity, celsius float64) RiskLevel {
	switch {
	case humidity > 80 && celsius > 25:
		return RiskHigh
	case humidity < 40:
		return RiskLow
	default:
		return RiskModerate
	}
}
