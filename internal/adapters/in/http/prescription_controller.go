package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/in"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

type PrescriptionController struct {
	useCase in.PanelUseCase
}

func NewPrescriptionController(useCase in.PanelUseCase) *PrescriptionController {
	return &PrescriptionController{
		useCase: useCase,
	}
}

func (c *PrescriptionController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/prescriptions", c.createPrescription)
	api.POST("/prescriptions/upload", c.uploadPrescription)
}

type CreatePrescriptionRequest struct {
	out.PrescriptionRequest
	// SaveAsDraft оставляет рецепт черновиком, иначе он сразу выписывается
	SaveAsDraft bool `json:"saveAsDraft"`
}

func (c *PrescriptionController) createPrescription(ctx *gin.Context) {
	var req CreatePrescriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AppointmentID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Appointment is required"})
		return
	}

	prescription, err := c.useCase.CreatePrescription(ctx.Request.Context(), req.PrescriptionRequest, !req.SaveAsDraft)
	if err != nil {
		respondError(ctx, err, "Failed to create prescription")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"prescription": prescription})
}

func (c *PrescriptionController) uploadPrescription(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Prescription file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read prescription file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read prescription file"})
		return
	}

	req := out.UploadPrescriptionRequest{
		AppointmentID: ctx.PostForm("appointmentId"),
		FileName:      fileHeader.Filename,
		ContentType:   fileHeader.Header.Get("Content-Type"),
		Content:       content,
	}

	if req.AppointmentID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Appointment is required"})
		return
	}

	issue := ctx.PostForm("saveAsDraft") != "true"

	prescription, err := c.useCase.UploadPrescription(ctx.Request.Context(), req, issue)
	if err != nil {
		respondError(ctx, err, "Failed to upload prescription")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"prescription": prescription})
}
