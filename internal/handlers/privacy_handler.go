package handlers

import (
	"rvclassifieds/internal/middleware"
	"rvclassifieds/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PrivacyHandler serves the data-subject rights endpoints. Every route
// requires authentication.
type PrivacyHandler struct {
	service *services.PrivacyService
}

// NewPrivacyHandler creates a new PrivacyHandler.
func NewPrivacyHandler(service *services.PrivacyService) *PrivacyHandler {
	return &PrivacyHandler{service: service}
}

// RegisterRoutes registers the privacy routes under /privacy.
func (h *PrivacyHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	privacy := router.Group("/privacy", authRequired)
	privacy.Get("/data-export", h.HandleExport)
	privacy.Delete("/delete-account", h.HandleDeleteAccount)
	privacy.Post("/data-correction", h.HandleCorrection)
	privacy.Get("/consent-status", h.HandleGetConsent)
	privacy.Post("/update-consent", h.HandleUpdateConsent)
}

// HandleExport returns all data stored about the caller.
func (h *PrivacyHandler) HandleExport(c *fiber.Ctx) error {
	export, err := h.service.ExportData(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(export)
}

// HandleDeleteAccount anonymizes the caller's account and listings.
func (h *PrivacyHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	if err := h.service.DeleteAccount(c.UserContext(), middleware.CurrentUser(c)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete account")
	}
	return c.JSON(fiber.Map{"message": "Account successfully deleted"})
}

// HandleCorrection logs a data correction request.
func (h *PrivacyHandler) HandleCorrection(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	receipt, err := h.service.RequestCorrection(c.UserContext(), middleware.CurrentUser(c), payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(receipt)
}

// HandleGetConsent returns the caller's consent preferences.
func (h *PrivacyHandler) HandleGetConsent(c *fiber.Ctx) error {
	consent, err := h.service.GetConsent(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(consent)
}

// HandleUpdateConsent stores the caller's consent preferences.
func (h *PrivacyHandler) HandleUpdateConsent(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if _, err := h.service.SetConsent(c.UserContext(), middleware.CurrentUser(c), payload); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Consent preferences updated successfully"})
}
