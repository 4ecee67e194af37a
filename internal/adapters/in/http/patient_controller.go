package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/in"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

type PatientController struct {
	useCase in.PanelUseCase
}

func NewPatientController(useCase in.PanelUseCase) *PatientController {
	return &PatientController{
		useCase: useCase,
	}
}

func (c *PatientController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/patients", c.listPatients)
	api.POST("/patients", c.createPatient)
	api.GET("/patients/:patientId", c.getPatient)
	api.PUT("/patients/:patientId", c.updatePatient)
	api.DELETE("/patients/:patientId", c.deletePatient)
	api.PATCH("/patients/:patientId/toggle-status", c.toggleStatus)
}

func (c *PatientController) listPatients(ctx *gin.Context) {
	patients, err := c.useCase.GetPatients(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to load patients")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"patients": patients})
}

func (c *PatientController) getPatient(ctx *gin.Context) {
	patient, err := c.useCase.GetPatient(ctx.Request.Context(), ctx.Param("patientId"))
	if err != nil {
		respondError(ctx, err, "Failed to load patient details")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"patient": patient})
}

func (c *PatientController) createPatient(ctx *gin.Context) {
	var req out.PatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullName == "" || req.Email == "" || req.Mobile == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
		return
	}

	patient, err := c.useCase.CreatePatient(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create patient")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"patient": patient})
}

func (c *PatientController) updatePatient(ctx *gin.Context) {
	var req out.PatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullName == "" || req.Email == "" || req.Mobile == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
		return
	}

	patient, err := c.useCase.UpdatePatient(ctx.Request.Context(), ctx.Param("patientId"), req)
	if err != nil {
		respondError(ctx, err, "Failed to update patient")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"patient": patient})
}

func (c *PatientController) deletePatient(ctx *gin.Context) {
	if err := c.useCase.DeletePatient(ctx.Request.Context(), ctx.Param("patientId")); err != nil {
		respondError(ctx, err, "Failed to delete patient")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *PatientController) toggleStatus(ctx *gin.Context) {
	patient, err := c.useCase.TogglePatientStatus(ctx.Request.Context(), ctx.Param("patientId"))
	if err != nil {
		respondError(ctx, err, "Failed to update patient status")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"patient": patient})
}
