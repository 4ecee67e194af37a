package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/in"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

type AppointmentController struct {
	useCase in.PanelUseCase
}

func NewAppointmentController(useCase in.PanelUseCase) *AppointmentController {
	return &AppointmentController{
		useCase: useCase,
	}
}

func (c *AppointmentController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/appointments", c.listAppointments)
	api.GET("/appointments/:appointmentId", c.getAppointment)
	api.PATCH("/appointments/:appointmentId/status", c.updateStatus)
	api.PATCH("/appointments/:appointmentId/cancel", c.cancelAppointment)
	api.DELETE("/appointments/:appointmentId", c.deleteAppointment)
	api.GET("/dashboard", c.dashboard)
}

type UpdateStatusRequest struct {
	Status domain.AppointmentStatus `json:"status" binding:"required"`
}

func (c *AppointmentController) listAppointments(ctx *gin.Context) {
	params := out.ListParams{
		Status: ctx.Query("status"),
	}
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil {
		params.Limit = limit
	}

	appointments, err := c.useCase.GetAppointments(ctx.Request.Context(), params)
	if err != nil {
		respondError(ctx, err, "Failed to load appointments")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (c *AppointmentController) getAppointment(ctx *gin.Context) {
	appointment, err := c.useCase.GetAppointment(ctx.Request.Context(), ctx.Param("appointmentId"))
	if err != nil {
		respondError(ctx, err, "Failed to load appointment details")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

func (c *AppointmentController) updateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.useCase.UpdateAppointmentStatus(ctx.Request.Context(), ctx.Param("appointmentId"), req.Status)
	if err != nil {
		respondError(ctx, err, "Failed to update appointment status")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *AppointmentController) cancelAppointment(ctx *gin.Context) {
	if err := c.useCase.CancelAppointment(ctx.Request.Context(), ctx.Param("appointmentId")); err != nil {
		respondError(ctx, err, "Failed to cancel appointment")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *AppointmentController) deleteAppointment(ctx *gin.Context) {
	if err := c.useCase.DeleteAppointment(ctx.Request.Context(), ctx.Param("appointmentId")); err != nil {
		respondError(ctx, err, "Failed to delete appointment")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *AppointmentController) dashboard(ctx *gin.Context) {
	dashboard, err := c.useCase.GetDashboard(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to load dashboard")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}
