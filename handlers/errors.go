package handlers

import (
	"errors"
	"net/http"

	availabilityRepo "lawflow/database/repository/availability"
	bookingRepo "lawflow/database/repository/booking"
	"lawflow/services/availability"
	"lawflow/services/scheduling"
	"lawflow/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the scheduling error taxonomy onto distinct HTTP status
// codes so calling UIs can tell "try another slot" from "fix your input"
// from "not allowed right now".
func respondError(c *gin.Context, err error) {
	var verr *scheduling.ValidationError
	var cerr *scheduling.ConflictError
	var terr *scheduling.StateTransitionError
	var perr *scheduling.PreconditionError
	var serr *scheduling.StoreUnavailableError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":       "validation failed",
			"missingFields": verr.MissingFields,
			"invalidFields": verr.InvalidFields,
		})
	case errors.As(err, &cerr):
		c.JSON(http.StatusConflict, gin.H{
			"message": "slot no longer available",
			"reason":  cerr.Reason,
		})
	case errors.As(err, &terr):
		c.JSON(http.StatusConflict, gin.H{
			"message": "invalid status transition",
			"from":    terr.From,
			"to":      terr.To,
			"reason":  terr.Reason,
		})
	case errors.As(err, &perr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":          perr.Message,
			"blockingBookings": perr.BlockingBookings,
		})
	case errors.As(err, &serr):
		utils.JSONError(c, http.StatusServiceUnavailable, "storage temporarily unavailable", "please retry shortly")
	case errors.Is(err, availabilityRepo.ErrNotFound), errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, availability.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, "forbidden", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
