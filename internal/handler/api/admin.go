package api

import (
	"errors"
	"net/http"

	reqdto "fuelpos/internal/handler/dto/request"
	resdto "fuelpos/internal/handler/dto/response"
	"fuelpos/internal/handler/httperr"
	"fuelpos/internal/usecase/commands"
	"fuelpos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	userCommands    commands.UserCommands
	settingCommands commands.SettingCommands
	userQueries     queries.UserQueries
}

func NewAdminHandler(userCommands commands.UserCommands, settingCommands commands.SettingCommands, userQueries queries.UserQueries) *AdminHandler {
	return &AdminHandler{
		userCommands:    userCommands,
		settingCommands: settingCommands,
		userQueries:     userQueries,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if users == nil {
		users = []*queries.UserView{}
	}
	c.JSON(http.StatusOK, resdto.Success(users))
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	id, err := h.userCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidUser):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user data")
		case errors.Is(err, commands.ErrDuplicateUser):
			httperr.AbortWithError(c, http.StatusConflict, err, "Username or mobile number already taken")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewCreateUserResponse(id))
}

func (h *AdminHandler) SetUserActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID")
		return
	}

	var req reqdto.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.userCommands.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewSetUserActiveResponse(*req.IsActive))
}

func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingCommands.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(settings))
}

func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	var req reqdto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.settingCommands.Update(c.Request.Context(), req.Key, req.Value); err != nil {
		if errors.Is(err, commands.ErrInvalidSetting) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid setting")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.Success(gin.H{"setting_key": req.Key}))
}
