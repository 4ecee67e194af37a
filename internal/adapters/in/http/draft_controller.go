package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/in"
	"github.com/suchimauz/clinic-admin-panel/internal/core/services"
)

// DraftController - форма создания и редактирования записи на прием
// Все состояние формы живет на сервере, клиент только дергает ручки
type DraftController struct {
	useCase in.AppointmentDraftUseCase
}

func NewDraftController(useCase in.AppointmentDraftUseCase) *DraftController {
	return &DraftController{
		useCase: useCase,
	}
}

func (c *DraftController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/drafts", c.startDraft)
	api.GET("/drafts/:draftId", c.getDraft)
	api.PUT("/drafts/:draftId/fields", c.setField)
	api.PUT("/drafts/:draftId/slot", c.selectSlot)
	api.POST("/drafts/:draftId/submit", c.submit)
	api.DELETE("/drafts/:draftId", c.discard)
}

type StartDraftRequest struct {
	// Пустой appointmentId открывает форму создания, заполненный - редактирования
	AppointmentID string `json:"appointmentId"`
}

type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type SelectSlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
}

func (c *DraftController) startDraft(ctx *gin.Context) {
	var req StartDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AppointmentID == "" {
		draft, err := c.useCase.StartCreateDraft(ctx.Request.Context())
		if err != nil {
			respondError(ctx, err, "Failed to open appointment form")
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{"draft": draft})
		return
	}

	draft, err := c.useCase.StartEditDraft(ctx.Request.Context(), req.AppointmentID)
	if err != nil && !errors.Is(err, services.ErrSlotsFetch) {
		respondError(ctx, err, "Failed to load appointment details")
		return
	}

	// Запись загрузилась, а слоты нет - форма все равно открывается,
	// пользователь получает уведомление
	response := gin.H{"draft": draft}
	if err != nil {
		response["error"] = "Failed to load available slots"
	}

	ctx.JSON(http.StatusCreated, response)
}

func (c *DraftController) getDraft(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draftId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft ID format"})
		return
	}

	draft, err := c.useCase.GetDraft(ctx.Request.Context(), draftID)
	if err != nil {
		respondError(ctx, err, "Failed to load draft")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"draft":      draft,
		"slotsState": draft.SlotsDisplayState(),
	})
}

func (c *DraftController) setField(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draftId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft ID format"})
		return
	}

	var req SetFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := c.useCase.SetField(ctx.Request.Context(), draftID, req.Field, req.Value)
	if err != nil && !errors.Is(err, services.ErrSlotsFetch) {
		respondError(ctx, err, "Failed to update draft")
		return
	}

	response := gin.H{"draft": draft}
	if err != nil {
		// Поле обновилось, но слоты на новую дату не загрузились
		response["error"] = "Failed to load available slots"
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *DraftController) selectSlot(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draftId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft ID format"})
		return
	}

	var req SelectSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := c.useCase.SelectSlot(ctx.Request.Context(), draftID, req.Start)
	if err != nil {
		respondError(ctx, err, "Failed to select slot")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (c *DraftController) submit(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draftId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft ID format"})
		return
	}

	appointment, err := c.useCase.Submit(ctx.Request.Context(), draftID)
	if err != nil {
		respondError(ctx, err, "Failed to save appointment")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

func (c *DraftController) discard(ctx *gin.Context) {
	draftID, err := uuid.Parse(ctx.Param("draftId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft ID format"})
		return
	}

	if err := c.useCase.DiscardDraft(ctx.Request.Context(), draftID); err != nil {
		respondError(ctx, err, "Failed to discard draft")
		return
	}

	ctx.Status(http.StatusNoContent)
}
