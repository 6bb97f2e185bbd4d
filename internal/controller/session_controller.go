package controller

import (
	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/pkg/serverutils"
	"hongling-sanctuary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Upsert(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Put(":id", c.Upsert)
	h.Get(":id", c.Show)
}

func (c *sessionController) Upsert(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	var req dto.UpsertSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Upsert(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	res, err := c.sessionService.Get(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewHTTPError(fiber.StatusNotFound, "會話不存在或已過期", nil)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}
