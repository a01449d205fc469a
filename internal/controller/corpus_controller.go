package controller

import (
	"customs-clearance-be/internal/dto"
	"customs-clearance-be/internal/pkg/serverutils"
	"customs-clearance-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICorpusController interface {
	RegisterRoutes(r fiber.Router)
	AddDocument(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type corpusController struct {
	corpusService service.ICorpusService
}

func NewCorpusController(corpusService service.ICorpusService) ICorpusController {
	return &corpusController{
		corpusService: corpusService,
	}
}

func (c *corpusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/corpus/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.AddDocument)
	h.Get("/stats", c.Stats)
}

func (c *corpusController) AddDocument(ctx *fiber.Ctx) error {
	var req dto.CreateCorpusDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.corpusService.AddDocument(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document queued for indexing", nil))
}

func (c *corpusController) Stats(ctx *fiber.Ctx) error {
	res, err := c.corpusService.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Corpus stats", res))
}
