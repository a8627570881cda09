package controller

import (
	"golexai-be/internal/dto"
	"golexai-be/internal/pkg/serverutils"
	"golexai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Regenerate(ctx *fiber.Ctx) error
	GenerateDocument(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
	ShowConversation(ctx *fiber.Ctx) error
	ConversationMessages(ctx *fiber.Ctx) error
	DeleteConversation(ctx *fiber.Ctx) error
	ListPrompts(ctx *fiber.Ctx) error
	ListKnowledgeBase(ctx *fiber.Ctx) error
	CreateKnowledgeBaseEntry(ctx *fiber.Ctx) error
	UpdateKnowledgeBaseEntry(ctx *fiber.Ctx) error
	DeleteKnowledgeBaseEntry(ctx *fiber.Ctx) error
}

type aiController struct {
	chatService         service.IChatService
	conversationService service.IConversationService
	promptService       service.IPromptService
}

func NewAiController(
	chatService service.IChatService,
	conversationService service.IConversationService,
	promptService service.IPromptService,
) IAiController {
	return &aiController{
		chatService:         chatService,
		conversationService: conversationService,
		promptService:       promptService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/chat", c.Chat)
	h.Post("/regenerate", c.Regenerate)
	h.Post("/generate-document", c.GenerateDocument)
	h.Get("/conversations", c.ListConversations)
	h.Get("/conversations/:id", c.ShowConversation)
	h.Get("/conversations/:id/messages", c.ConversationMessages)
	h.Delete("/conversations/:id", c.DeleteConversation)
	h.Get("/prompts", c.ListPrompts)
	h.Get("/knowledge-base", c.ListKnowledgeBase)
	h.Post("/knowledge-base", c.CreateKnowledgeBaseEntry)
	h.Put("/knowledge-base/:id", c.UpdateKnowledgeBaseEntry)
	h.Delete("/knowledge-base/:id", c.DeleteKnowledgeBaseEntry)
}

func (c *aiController) Chat(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *aiController) Regenerate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RegenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Regenerate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success regenerate response", res))
}

func (c *aiController) GenerateDocument(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.GenerateDocument(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate document", res))
}

func (c *aiController) ListConversations(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.conversationService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list conversations", res))
}

func (c *aiController) ShowConversation(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.conversationService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}

func (c *aiController) ConversationMessages(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.conversationService.Messages(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list conversation messages", res))
}

func (c *aiController) DeleteConversation(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.conversationService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete conversation", nil))
}

func (c *aiController) ListPrompts(ctx *fiber.Ctx) error {
	res, err := c.promptService.ListPrompts(ctx.Context(), ctx.Query("language"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list prompts", res))
}

func (c *aiController) ListKnowledgeBase(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.promptService.ListKnowledgeBase(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list knowledge base entries", res))
}

func (c *aiController) CreateKnowledgeBaseEntry(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateKnowledgeBaseEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.CreateKnowledgeBaseEntry(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create knowledge base entry", res))
}

func (c *aiController) UpdateKnowledgeBaseEntry(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateKnowledgeBaseEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.UpdateKnowledgeBaseEntry(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update knowledge base entry", res))
}

func (c *aiController) DeleteKnowledgeBaseEntry(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.promptService.DeleteKnowledgeBaseEntry(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete knowledge base entry", nil))
}
