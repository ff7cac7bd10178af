package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendCrop(t *testing.T) {
	tests := []struct {
		name string
		in   CropConditions
		want string
	}{
		{"black soil heavy rain", CropConditions{Soil: "black", Rainfall: "heavy"}, "Rice"},
		{"red soil hot", CropConditions{Soil: "red", Temperature: "hot"}, "Cotton"},
		{"sandy soil low rain", CropConditions{Soil: "sandy", Rainfall: "low"}, "Millets"},
		{"sandy loam low rain", CropConditions{Soil: "sandy loam", Rainfall: "low"}, "Millets"},
		{"black soil wins over later rules", CropConditions{Soil: "black", Rainfall: "heavy", Temperature: "hot"}, "Rice"},
		{"red soil mild", CropConditions{Soil: "red", Temperature: "mild"}, "Soybean"},
		{"black soil low rain", CropConditions{Soil: "black", Rainfall: "low"}, "Soybean"},
		{"empty input", CropConditions{}, "Soybean"},
		{"case sensitive", CropConditions{Soil: "Black", Rainfall: "heavy"}, "Soybean"},
		{"water and last crop ignored", CropConditions{Soil: "red", Temperature: "hot", Water: "none", LastCrop: "Cotton"}, "Cotton"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendCrop(tt.in))
		})
	}
}

func TestRecommendCropDeterministic(t *testing.T) {
	in := CropConditions{Soil: "sandy", Rainfall: "low", Water: "medium"}
	first := RecommendCrop(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RecommendCrop(in))
	}
}
