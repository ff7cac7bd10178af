package models

type Scheme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ApplyURL    string `json:"applyUrl"`
}

type Expert struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Contact   string `json:"contact"`
}

// DashboardSections lists the tiles shown on the farmer dashboard
func DashboardSections() []string {
	return []string{"Govt Schemes", "Loan Info", "Crop", "Order", "Medical"}
}

func DiseaseSymptoms() []string {
	return []string{"Yellow Leaves", "Brown Spots", "Wilting", "Stunted Growth"}
}

func DiseaseExperts() []Expert {
	return []Expert{
		{Name: "Dr. Ravi Kumar", Specialty: "Soil Specialist", Contact: "9876543210"},
		{Name: "Dr. Ananya Sharma", Specialty: "Plant Pathologist", Contact: "9123456780"},
		{Name: "Mr. Suresh Patel", Specialty: "Farming Consultant", Contact: "9988776655"},
	}
}

func GovtSchemes() []Scheme {
	return []Scheme{
		{
			Name:        "Pradhan Mantri Fasal Bima Yojana",
			Description: "Comprehensive crop insurance against natural calamities.",
			ApplyURL:    "https://pmfby.gov.in/",
		},
		{
			Name:        "Kisan Credit Card (KCC)",
			Description: "Easy, low-interest credit for agricultural needs.",
			ApplyURL:    "https://www.kisan.gov.in/credit_card.aspx",
		},
		{
			Name:        "Paramparagat Krishi Vikas Yojana",
			Description: "Support for organic farming and certification.",
			ApplyURL:    "https://pgsindia-ncof.gov.in/",
		},
	}
}
