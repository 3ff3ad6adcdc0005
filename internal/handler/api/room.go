package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const msgAllFieldsRequired = "All fields are required"

type RoomHandler struct {
	cmds commands.RoomCommands
}

func NewRoomHandler(cmds commands.RoomCommands) *RoomHandler {
	return &RoomHandler{cmds: cmds}
}

// @Summary Create room
// @Description Register a bookable room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.CreateRoomResponse
// @Failure 400 {object} httperr.Response
// @Router /create-room [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgAllFieldsRequired, httperr.BindingDetail(err))
		return
	}

	result, err := h.cmds.CreateRoom(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room data", httperr.BindingDetail(err))
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRoomResponse{
		Message: "Room created successfully",
		RoomID:  result.RoomID,
	})
}
