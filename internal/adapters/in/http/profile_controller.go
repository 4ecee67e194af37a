package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/in"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

// ProfileController - вход доктора и его профиль с рабочими часами
type ProfileController struct {
	useCase in.PanelUseCase
}

func NewProfileController(useCase in.PanelUseCase) *ProfileController {
	return &ProfileController{
		useCase: useCase,
	}
}

func (c *ProfileController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/auth/login", c.login)
	api.POST("/auth/logout", c.logout)
	api.POST("/auth/register", c.register)
	api.GET("/profile", c.getProfile)
	api.PUT("/profile", c.updateProfile)
}

func (c *ProfileController) login(ctx *gin.Context) {
	var req out.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.useCase.Login(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Login failed")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"doctor": result.Doctor})
}

func (c *ProfileController) register(ctx *gin.Context) {
	var req out.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
		return
	}

	doctor, err := c.useCase.Register(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Registration failed")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"doctor": doctor})
}

func (c *ProfileController) logout(ctx *gin.Context) {
	if err := c.useCase.Logout(ctx.Request.Context()); err != nil {
		// Токен панели уже сброшен, ошибку бэкенда только показываем
		ctx.JSON(http.StatusOK, gin.H{"error": "Logout completed with errors"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ProfileController) getProfile(ctx *gin.Context) {
	doctor, err := c.useCase.GetProfile(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to load profile")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

func (c *ProfileController) updateProfile(ctx *gin.Context) {
	var req out.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := c.useCase.UpdateProfile(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to update profile")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"doctor": doctor})
}
