package controller

import (
	"io"

	"customs-clearance-be/internal/constant"
	"customs-clearance-be/internal/dto"
	"customs-clearance-be/internal/pkg/logger"
	"customs-clearance-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
}

type assistantController struct {
	chatService     service.IChatService
	documentService service.IDocumentService
	sysLogger       logger.ILogger
}

func NewAssistantController(
	chatService service.IChatService,
	documentService service.IDocumentService,
	sysLogger logger.ILogger,
) IAssistantController {
	return &assistantController{
		chatService:     chatService,
		documentService: documentService,
		sysLogger:       sysLogger,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Post("/get", c.Chat)
	r.Post("/upload", c.Upload)
}

func (c *assistantController) Index(ctx *fiber.Ctx) error {
	return ctx.SendFile("./static/index.html")
}

// Chat answers one question. The response body is the localized answer as
// plain text, no JSON envelope.
func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	msg := ctx.FormValue("msg")
	if msg == "" {
		return ctx.Status(fiber.StatusBadRequest).SendString("msg is required")
	}

	sessionID := ctx.Locals("session_id").(string)

	answer, err := c.chatService.Ask(ctx.Context(), msg, sessionID)
	if err != nil {
		c.sysLogger.Error("chat", "ask failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).SendString("Sorry, something went wrong. Please try again.")
	}

	return ctx.SendString(answer)
}

func (c *assistantController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file uploaded"})
	}
	if fileHeader.Filename == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file selected"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Unreadable upload"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Unreadable upload"})
	}

	sessionID := ctx.Locals("session_id").(string)

	result, err := c.documentService.AnalyzeUpload(ctx.Context(), data, fileHeader.Filename, sessionID)
	if err != nil {
		return err // typed errors are mapped by the error middleware
	}

	if result.NoReadableText {
		return ctx.JSON(dto.UploadReplyResponse{Reply: constant.NoReadableTextReply})
	}

	return ctx.JSON(dto.UploadAnalysisResponse{
		Verification: result.Verification,
		Analysis:     result.Analysis,
	})
}
