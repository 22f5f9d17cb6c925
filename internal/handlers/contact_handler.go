package handlers

import (
	"rvclassifieds/internal/models"
	"rvclassifieds/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler relays buyer messages to sellers.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers the contact route.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact-seller", h.HandleContactSeller)
}

// HandleContactSeller sends an inquiry to the seller of a listing.
func (h *ContactHandler) HandleContactSeller(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if ok, err := bindJSON(c, &msg); !ok {
		return err
	}

	if err := h.service.ContactSeller(c.UserContext(), msg); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Message sent successfully"})
}
