package utils

import "strings"

const DefaultCrop = "Soybean"

// CropConditions are the field observations a farmer submits.
// Water and LastCrop are collected but no rule reads them yet.
type CropConditions struct {
	Soil        string `json:"soil"`
	Water       string `json:"water"`
	LastCrop    string `json:"lastCrop"`
	Rainfall    string `json:"rainfall"`
	Temperature string `json:"temperature"`
}

type cropRule struct {
	crop    string
	matches func(CropConditions) bool
}

// Evaluated top-down; first match wins.
var cropRules = []cropRule{
	{"Rice", func(c CropConditions) bool { return c.Soil == "black" && c.Rainfall == "heavy" }},
	{"Cotton", func(c CropConditions) bool { return c.Soil == "red" && c.Temperature == "hot" }},
	{"Millets", func(c CropConditions) bool { return strings.Contains(c.Soil, "sandy") && c.Rainfall == "low" }},
}

// RecommendCrop returns the crop of the first matching rule, or DefaultCrop.
func RecommendCrop(c CropConditions) string {
	for _, r := range cropRules {
		if r.matches(c) {
			return r.crop
		}
	}
	return DefaultCrop
}
