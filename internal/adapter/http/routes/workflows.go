package routes

import (
	"atelier_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkflows = "/workflows"
	PathBookings  = "/bookings"
	PathRepairs   = "/repairs"
	PathDeposits  = "/deposits"
)

func addWorkflowRoutes(rg *gin.RouterGroup, transitionHandler *handlers.TransitionHandler, queryHandler *handlers.QueryHandler) {
	workflows := rg.Group(PathWorkflows)
	{
		// One endpoint for every lifecycle action; the transition table
		// decides what is legal, not the router.
		workflows.POST("/:entity_type/:id/:action", transitionHandler.ApplyTransition)
	}

	rg.GET(PathBookings+"/:id", queryHandler.GetBooking)
	rg.GET(PathRepairs+"/:id", queryHandler.GetRepair)
	rg.GET(PathDeposits+"/:id", queryHandler.GetDeposit)
}
