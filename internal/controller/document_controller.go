package controller

import (
	"encoding/json"
	"fmt"
	"io"

	"golexai-be/internal/dto"
	"golexai-be/internal/pkg/serverutils"
	"golexai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadSize = 20 << 20 // 20 MiB

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Upload)
	h.Get("/", c.List)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/analyze", c.Analyze)
	h.Get("/:id/export", c.Export)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "file exceeds the upload limit")
	}

	req := dto.UploadDocumentRequest{
		Title:    ctx.FormValue("title"),
		FileType: ctx.FormValue("file_type"),
		Priority: ctx.FormValue("priority"),
	}
	if caseIdValue := ctx.FormValue("case_id"); caseIdValue != "" {
		caseId, parseErr := uuid.Parse(caseIdValue)
		if parseErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid case_id")
		}
		req.CaseId = &caseId
	}
	if tagsValue := ctx.FormValue("tags"); tagsValue != "" {
		if err := json.Unmarshal([]byte(tagsValue), &req.Tags); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "tags must be a JSON string array")
		}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	opened, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer opened.Close()

	content, err := io.ReadAll(opened)
	if err != nil {
		return err
	}

	res, err := c.documentService.Upload(ctx.Context(), userId, &req, &service.UploadedFile{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Content:  content,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload document", res))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var caseId *uuid.UUID
	if caseIdValue := ctx.Query("case_id"); caseIdValue != "" {
		parsed, err := uuid.Parse(caseIdValue)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid case_id")
		}
		caseId = &parsed
	}

	res, err := c.documentService.List(ctx.Context(), userId, caseId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}

func (c *documentController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.documentService.Show(ctx.Context(), userId, id, ctx.IP())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show document", res))
}

func (c *documentController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update document", res))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.documentService.Delete(ctx.Context(), userId, id, ctx.IP()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}

func (c *documentController) Analyze(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.documentService.Analyze(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze document", res))
}

func (c *documentController) Export(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.documentService.Export(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.MimeType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, res.Filename))
	return ctx.Send(res.Content)
}
