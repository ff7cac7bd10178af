package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDiseaseRisk(t *testing.T) {
	tests := []struct {
		name     string
		humidity float64
		celsius  float64
		want     RiskLevel
	}{
		{"humid and warm", 85, 26, RiskHigh},
		{"dry", 30, 26, RiskLow},
		{"dry and cold", 30, 5, RiskLow},
		{"humid but cool", 85, 20, RiskModerate},
		{"boundary humidity 80", 80, 30, RiskModerate},
		{"boundary temperature 25", 90, 25, RiskModerate},
		{"boundary humidity 40", 40, 30, RiskModerate},
		{"mid range", 60, 22, RiskModerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDiseaseRisk(tt.humidity, tt.celsius))
		})
	}
}

func TestRiskMessages(t *testing.T) {
	assert.Equal(t, "⚠️ High Risk of fungal diseases.", RiskHigh.Message())
	assert.Equal(t, "⚠️ Moderate Risk.", RiskModerate.Message())
	assert.Equal(t, "✅ Low Risk.", RiskLow.Message())
}

func TestKelvinToCelsius(t *testing.T) {
	assert.InDelta(t, 26.0, KelvinToCelsius(299.15), 1e-9)
	assert.InDelta(t, 0.0, KelvinToCelsius(273.15), 1e-9)
}
