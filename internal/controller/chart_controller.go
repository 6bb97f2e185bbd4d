package controller

import (
	"hongling-sanctuary-be/internal/pkg/serverutils"
	"hongling-sanctuary-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChartController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Narratives(ctx *fiber.Ctx) error
	NarrativeByTone(ctx *fiber.Ctx) error
}

type chartController struct {
	chartService service.IChartService
}

func NewChartController(chartService service.IChartService) IChartController {
	return &chartController{
		chartService: chartService,
	}
}

func (c *chartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chart/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Get(":id/narratives", c.Narratives)
	h.Get(":id/narrative", c.NarrativeByTone)
}

func (c *chartController) List(ctx *fiber.Ctx) error {
	userId := ctx.Query("userId")
	if userId == "" {
		return serverutils.NewHTTPError(fiber.StatusBadRequest, "userId query parameter is required", nil)
	}

	limit := ctx.QueryInt("limit")
	offset := ctx.QueryInt("offset")

	res, err := c.chartService.ListByUser(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list charts", res))
}

func (c *chartController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewHTTPError(fiber.StatusBadRequest, "invalid chart id", err)
	}

	res, err := c.chartService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewHTTPError(fiber.StatusNotFound, "找不到指定的命盤資料", nil)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chart", res))
}

func (c *chartController) Narratives(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewHTTPError(fiber.StatusBadRequest, "invalid chart id", err)
	}

	res, err := c.chartService.Narratives(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list narratives", res))
}

func (c *chartController) NarrativeByTone(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewHTTPError(fiber.StatusBadRequest, "invalid chart id", err)
	}

	tone := ctx.Query("tone", "default")
	res, err := c.chartService.NarrativeByTone(ctx.Context(), id, tone)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewHTTPError(fiber.StatusNotFound, "找不到指定的敘事報告", nil)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show narrative", res))
}
