package routes

import (
	"lawflow/handlers"
	"lawflow/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the scheduling core.
func RegisterRoutes(
	r *gin.Engine,
	availabilityHandler *handlers.AvailabilityHandler,
	bookingHandler *handlers.BookingHandler,
	slotHandler *handlers.SlotHandler,
) {
	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		// Public booking surface (clients arrive via a shared link).
		api.GET("/availability/:profileId/slots", slotHandler.ListSlots)
		api.POST("/availability/:profileId/bookings", bookingHandler.CreateBooking)
		// Anonymous callers may only cancel as the client; approval, rejection
		// and completion require the host token the handler checks for.
		api.PATCH("/bookings/:id", middleware.OptionalHostAuth(), bookingHandler.TransitionBooking)
		api.GET("/public/:slug", availabilityHandler.GetPublicProfile)
		api.GET("/public/:slug/slots", slotHandler.ListSlotsBySlug)

		// Host surface requires the external auth system's bearer token.
		host := api.Group("")
		host.Use(middleware.HostAuth())
		{
			host.POST("/availability", availabilityHandler.CreateProfile)
			host.GET("/availability", availabilityHandler.ListProfiles)
			host.GET("/availability/:profileId", availabilityHandler.GetProfile)
			host.PUT("/availability/:profileId", availabilityHandler.UpdateProfile)
			host.DELETE("/availability/:profileId", availabilityHandler.DeleteProfile)
			host.GET("/availability/:profileId/bookings", bookingHandler.ListBookings)
			host.DELETE("/bookings/:id", bookingHandler.DeleteBooking)
		}
	}
}
