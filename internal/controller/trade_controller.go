package controller

import (
	"customs-clearance-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITradeController interface {
	RegisterRoutes(r fiber.Router)
	LookupHSCode(ctx *fiber.Ctx) error
}

type tradeController struct {
	tradeService service.ITradeService
}

func NewTradeController(tradeService service.ITradeService) ITradeController {
	return &tradeController{
		tradeService: tradeService,
	}
}

func (c *tradeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/trade/v1")
	h.Get("/hs-code", c.LookupHSCode)
}

func (c *tradeController) LookupHSCode(ctx *fiber.Ctx) error {
	res, err := c.tradeService.LookupHSCode(ctx.Context(), ctx.Query("product"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
