package handlers

import (
	"math"
	"strconv"

	"rvclassifieds/internal/middleware"
	"rvclassifieds/internal/models"
	"rvclassifieds/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ListingHandler handles HTTP requests for listings.
type ListingHandler struct {
	service *services.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service *services.ListingService) *ListingHandler {
	return &ListingHandler{
		service: service,
	}
}

// RegisterRoutes registers the listing routes.
func (h *ListingHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/listings", h.HandleSearch)
	router.Get("/listings/:id", h.HandleGet)
	router.Post("/listings", authRequired, h.HandleCreate)
	router.Put("/listings/:id", authRequired, h.HandleUpdate)
	router.Delete("/listings/:id", authRequired, h.HandleDelete)
	router.Get("/my-listings", authRequired, h.HandleMyListings)
	router.Get("/vehicle-types", h.HandleVehicleTypes)
	router.Get("/stats", h.HandleStats)
}

// HandleCreate creates a listing owned by the caller.
func (h *ListingHandler) HandleCreate(c *fiber.Ctx) error {
	var input models.ListingInput
	if ok, err := bindJSON(c, &input); !ok {
		return err
	}

	listing, err := h.service.CreateListing(c.UserContext(), input, middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listing)
}

// HandleSearch lists active listings matching the query parameters.
func (h *ListingHandler) HandleSearch(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	listings, err := h.service.SearchListings(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listings)
}

// HandleGet returns one active listing.
func (h *ListingHandler) HandleGet(c *fiber.Ctx) error {
	listing, err := h.service.GetListing(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listing)
}

// HandleMyListings returns every listing of the caller.
func (h *ListingHandler) HandleMyListings(c *fiber.Ctx) error {
	listings, err := h.service.ListOwned(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listings)
}

// HandleUpdate replaces a listing owned by the caller.
func (h *ListingHandler) HandleUpdate(c *fiber.Ctx) error {
	var input models.ListingInput
	if ok, err := bindJSON(c, &input); !ok {
		return err
	}

	listing, err := h.service.UpdateListing(c.UserContext(), c.Params("id"), input, middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listing)
}

// HandleDelete soft-deletes a listing owned by the caller.
func (h *ListingHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteListing(c.UserContext(), c.Params("id"), middleware.CurrentUser(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Listing deleted successfully",
	})
}

// HandleVehicleTypes returns the vehicle categories.
func (h *ListingHandler) HandleVehicleTypes(c *fiber.Ctx) error {
	return c.JSON(h.service.VehicleTypes())
}

// HandleStats returns marketplace counters.
func (h *ListingHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func parseFilter(c *fiber.Ctx) (models.ListingFilter, error) {
	filter := models.ListingFilter{
		VehicleType: c.Query("vehicle_type"),
		SearchText:  c.Query("search_text"),
	}

	var err error
	if filter.Skip, err = queryInt(c, "skip", 0); err != nil {
		return filter, err
	}
	if filter.Limit, err = queryInt(c, "limit", services.DefaultSearchLimit); err != nil {
		return filter, err
	}
	if filter.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return filter, err
	}
	if filter.MinYear, err = queryIntPtr(c, "min_year"); err != nil {
		return filter, err
	}
	if filter.MaxYear, err = queryIntPtr(c, "max_year"); err != nil {
		return filter, err
	}
	return filter, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	v, err := queryIntPtr(c, key)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}

func queryIntPtr(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Query parameter '"+key+"' must be an integer")
	}
	return &v, nil
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Query parameter '"+key+"' must be a number")
	}
	return &v, nil
}
