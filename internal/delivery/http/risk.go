package http

import (
	"errors"
	"net/http"

	"stockwise/internal/dto"
	"stockwise/internal/repository"
	"stockwise/internal/risk"
	"stockwise/internal/service"
	"stockwise/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupRisk(base *echo.Group) {
	g := base.Group("/risk")
	g.GET("/questions", h.riskQuestions)
	g.GET("/profiles", h.riskProfiles)
	g.POST("/assess", h.riskAssess)

	sessions := g.Group("/sessions")
	sessions.POST("", h.startSession)
	sessions.GET("/:id", h.getSession)
	sessions.DELETE("/:id", h.endSession)
	sessions.POST("/:id/answer", h.answerSession)
	sessions.POST("/:id/next", h.nextSession)
	sessions.POST("/:id/back", h.backSession)
	sessions.POST("/:id/reset", h.resetSession)
}

func (h *HttpAPIHandler) riskQuestions(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", h.service.RiskService.Questions()))
}

func (h *HttpAPIHandler) riskProfiles(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", h.service.RiskService.Profiles()))
}

func (h *HttpAPIHandler) riskAssess(c echo.Context) error {
	req := new(dto.AssessRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	result, err := h.service.RiskService.Assess(c.Request().Context(), risk.AnswerSet(req.Answers))
	if err != nil {
		var answersErr *service.AnswersError
		if errors.As(err, &answersErr) {
			return c.JSON(http.StatusBadRequest, dto.NewBaseResponse(http.StatusBadRequest, err.Error(), answersErr))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("assessment completed", result))
}

type sessionView struct {
	ID string `json:"id"`
	risk.State
}

func (h *HttpAPIHandler) startSession(c echo.Context) error {
	id, state := h.service.RiskService.StartSession(c.Request().Context())
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "session started", sessionView{ID: id, State: state}))
}

func (h *HttpAPIHandler) getSession(c echo.Context) error {
	return h.sessionAction(c, func(id string) (risk.State, error) {
		return h.service.RiskService.Session(c.Request().Context(), id)
	})
}

func (h *HttpAPIHandler) endSession(c echo.Context) error {
	param := dto.SessionParam{ID: c.Param("id")}
	if err := h.validator.Struct(param); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid session id"))
	}

	err := h.service.RiskService.EndSession(c.Request().Context(), param.ID)
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("session not found"))
	default:
		h.log.ErrorContext(c.Request().Context(), "ending questionnaire session failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
}

func (h *HttpAPIHandler) answerSession(c echo.Context) error {
	req := new(dto.AnswerRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	return h.sessionAction(c, func(id string) (risk.State, error) {
		return h.service.RiskService.Answer(c.Request().Context(), id, req.Value)
	})
}

func (h *HttpAPIHandler) nextSession(c echo.Context) error {
	return h.sessionAction(c, func(id string) (risk.State, error) {
		return h.service.RiskService.Next(c.Request().Context(), id)
	})
}

func (h *HttpAPIHandler) backSession(c echo.Context) error {
	return h.sessionAction(c, func(id string) (risk.State, error) {
		return h.service.RiskService.Back(c.Request().Context(), id)
	})
}

func (h *HttpAPIHandler) resetSession(c echo.Context) error {
	return h.sessionAction(c, func(id string) (risk.State, error) {
		return h.service.RiskService.Reset(c.Request().Context(), id)
	})
}

// sessionAction validates the :id param, runs fn and maps questionnaire
// errors to 404 (unknown session) or 409 (transition not allowed, with the
// unchanged state attached).
func (h *HttpAPIHandler) sessionAction(c echo.Context, fn func(id string) (risk.State, error)) error {
	param := dto.SessionParam{ID: c.Param("id")}
	if err := h.validator.Struct(param); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid session id"))
	}

	state, err := fn(param.ID)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", sessionView{ID: param.ID, State: state}))
	case errors.Is(err, repository.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("session not found"))
	case errors.Is(err, risk.ErrUnanswered),
		errors.Is(err, risk.ErrUnknownOption),
		errors.Is(err, risk.ErrFirstQuestion),
		errors.Is(err, risk.ErrCompleted):
		return c.JSON(http.StatusConflict, dto.NewConflictResponse(err.Error(), sessionView{ID: param.ID, State: state}))
	default:
		h.log.ErrorContext(c.Request().Context(), "questionnaire session action failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
}
