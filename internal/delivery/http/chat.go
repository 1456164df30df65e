package http

import (
	"net/http"

	"stockwise/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupChat(base *echo.Group) {
	base.POST("/chat", h.chat)
}

func (h *HttpAPIHandler) chat(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.ConversationRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	if req.Messages == nil {
		req.Messages = []dto.ChatMessage{}
	}

	content, err := h.service.ChatService.Reply(ctx, *req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.ChatResponse{Content: content})
}
