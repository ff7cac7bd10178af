package controller

import (
	"ekrishi/models"
	"ekrishi/store"
	"ekrishi/utils"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RegistryController handles the in-memory doctor, drone rental and order registries.
type RegistryController struct {
	Doctors *store.List[models.Doctor]
	Rentals *store.List[models.DroneRental]
	Orders  *store.List[models.Order]
	Logger  *logrus.Entry
}

func NewRegistryController(doctors *store.List[models.Doctor], rentals *store.List[models.DroneRental], orders *store.List[models.Order], logger *logrus.Entry) *RegistryController {
	return &RegistryController{
		Doctors: doctors,
		Rentals: rentals,
		Orders:  orders,
		Logger:  logger,
	}
}

type PlaceOrderRequest struct {
	ItemName        string        `json:"itemName" validate:"notblank"`
	Quantity        models.Number `json:"quantity" validate:"required,gt=0"`
	BuyerName       string        `json:"buyerName" validate:"notblank"`
	BuyerContact    string        `json:"buyerContact" validate:"notblank"`
	DeliveryAddress string        `json:"deliveryAddress" validate:"notblank"`
}

func (rc *RegistryController) RegisterDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	// Registration is open; an odd email is only worth a warning.
	if doctor.Email != "" {
		if err := checkmail.ValidateFormat(doctor.Email); err != nil {
			rc.Logger.WithField("email", doctor.Email).Warn("Doctor registered with unusual email")
		}
	}

	rc.Doctors.Append(doctor)
	rc.Logger.WithField("specialization", doctor.Specialization).Info("Doctor registered")

	return c.JSON(fiber.Map{
		"message": "Doctor registered successfully!",
		"doctor":  doctor,
	})
}

func (rc *RegistryController) GetDoctors(c *fiber.Ctx) error {
	return c.JSON(rc.Doctors.All())
}

func (rc *RegistryController) RentDrone(c *fiber.Ctx) error {
	var rental models.DroneRental
	if err := c.BodyParser(&rental); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	rc.Rentals.Append(rental)
	rc.Logger.WithFields(logrus.Fields{
		"drone_type": rental.DroneType,
		"total_cost": rental.TotalCost,
	}).Info("Drone rental placed")

	return c.JSON(fiber.Map{
		"message": "Drone rental request placed successfully!",
		"rental":  rental,
	})
}

func (rc *RegistryController) GetDroneRentals(c *fiber.Ctx) error {
	return c.JSON(rc.Rentals.All())
}

// PlaceOrder appends an order only when every field is present.
func (rc *RegistryController) PlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "All fields are required!", err)
	}

	order := models.Order{
		ItemName:        req.ItemName,
		Quantity:        req.Quantity,
		BuyerName:       req.BuyerName,
		BuyerContact:    req.BuyerContact,
		DeliveryAddress: req.DeliveryAddress,
	}
	rc.Orders.Append(order)

	utils.LogEvent("order_placed", map[string]interface{}{
		"item":     order.ItemName,
		"quantity": order.Quantity,
	})

	return c.JSON(fiber.Map{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

func (rc *RegistryController) GetOrders(c *fiber.Ctx) error {
	return c.JSON(rc.Orders.All())
}
