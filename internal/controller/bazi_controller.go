package controller

import (
	"errors"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/pkg/serverutils"
	"hongling-sanctuary-be/internal/service"
	"hongling-sanctuary-be/pkg/render"

	"github.com/gofiber/fiber/v2"
)

type IBaziController interface {
	RegisterRoutes(r fiber.Router)
	Calculate(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	Report(ctx *fiber.Ctx) error
}

type baziController struct {
	baziService service.IBaziService
}

func NewBaziController(baziService service.IBaziService) IBaziController {
	return &baziController{
		baziService: baziService,
	}
}

func (c *baziController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bazi/v1")
	h.Post("calculate", c.Calculate)
	h.Post("analysis", c.Analyze)
	h.Post("report", c.Report)
}

func (c *baziController) Calculate(ctx *fiber.Ctx) error {
	var req dto.CalculateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.baziService.Calculate(ctx.Context(), &req)
	if err != nil {
		return serverutils.NewHTTPError(fiber.StatusBadGateway, "八字計算失敗", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success calculate chart", res))
}

func (c *baziController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalysisRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.baziService.Analyze(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze chart", res))
}

// Report responds with the rendered HTML page rather than JSON.
func (c *baziController) Report(ctx *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	html, err := c.baziService.RenderReport(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, render.ErrRenderInFlight) {
			return serverutils.NewHTTPError(fiber.StatusTooManyRequests, "報告產生中，請稍後再試", err)
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(html)
}
