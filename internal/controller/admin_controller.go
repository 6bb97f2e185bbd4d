package controller

import (
	"hongling-sanctuary-be/internal/pkg/serverutils"
	"hongling-sanctuary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Statistics(ctx *fiber.Ctx) error
	CleanupSessions(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService   service.IAdminService
	sessionService service.ISessionService
}

func NewAdminController(adminService service.IAdminService, sessionService service.ISessionService) IAdminController {
	return &adminController{
		adminService:   adminService,
		sessionService: sessionService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("statistics", c.Statistics)
	h.Post("sessions/cleanup", c.CleanupSessions)
}

func (c *adminController) Statistics(ctx *fiber.Ctx) error {
	res, err := c.adminService.Statistics(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get statistics", res))
}

func (c *adminController) CleanupSessions(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Cleanup(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cleanup sessions", res))
}
