package models

// Doctor is a plant doctor available for consultation bookings.
type Doctor struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	AvailableTime  string `json:"availableTime"`
	Email          string `json:"email"`
}

// DroneRental is a farmer's request to rent a spraying/survey drone.
type DroneRental struct {
	FarmerName    string `json:"farmerName"`
	FarmerPhone   string `json:"farmerPhone"`
	FarmerAddress string `json:"farmerAddress"`
	DroneType     string `json:"droneType"`
	TotalCost     Number `json:"totalCost"`
}

// Order is a marketplace purchase. Every field is required.
type Order struct {
	ItemName        string `json:"itemName"`
	Quantity        Number `json:"quantity"`
	BuyerName       string `json:"buyerName"`
	BuyerContact    string `json:"buyerContact"`
	DeliveryAddress string `json:"deliveryAddress"`
}
