package controller

import (
	"os"
	"path/filepath"

	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	SummarizeAndSave(ctx *fiber.Ctx) error
	ByHeader(ctx *fiber.Ctx) error
	Headers(ctx *fiber.Ctx) error
	ByTopic(ctx *fiber.Ctx) error
	Favorites(ctx *fiber.Ctx) error
	Activity(ctx *fiber.Ctx) error
	Ingest(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ToggleFavorite(ctx *fiber.Ctx) error
	FactCheck(ctx *fiber.Ctx) error
	ListFactChecks(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService   service.INoteService
	collabHandler *CollabHandler
}

func NewNoteController(noteService service.INoteService, collabHandler *CollabHandler) INoteController {
	return &noteController{
		noteService:   noteService,
		collabHandler: collabHandler,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	// The collab socket authenticates its own token (browsers cannot set
	// headers on websocket upgrades), so it sits before the middleware.
	if c.collabHandler != nil {
		h.Get(":id/collab", c.collabHandler.ServeWs)
	}
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.SummarizeAndSave)
	h.Post("by-header", c.ByHeader)
	h.Get("headers", c.Headers)
	h.Post("by-topic", c.ByTopic)
	h.Get("favorites", c.Favorites)
	h.Get("activity", c.Activity)
	h.Post("ocr", c.Ingest)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Put(":id/favorite", c.ToggleFavorite)
	h.Post(":id/fact-check", c.FactCheck)
	h.Get(":id/fact-checks", c.ListFactChecks)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *noteController) SummarizeAndSave(ctx *fiber.Ctx) error {
	var req dto.SummarizeAndSaveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.SummarizeAndSave(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Summary saved successfully!", res))
}

func (c *noteController) ByHeader(ctx *fiber.Ctx) error {
	var req dto.NotesByHeaderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	doc, err := c.noteService.FindByHeader(ctx.Context(), currentUserId(ctx), req.Header)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get note", doc))
}

// Headers serves the caller's distinct note topics. The path name is a
// holdover clients still depend on.
func (c *noteController) Headers(ctx *fiber.Ctx) error {
	topics, err := c.noteService.Topics(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get headers", topics))
}

func (c *noteController) Favorites(ctx *fiber.Ctx) error {
	notes, err := c.noteService.Favorites(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get favorites", notes))
}

func (c *noteController) ByTopic(ctx *fiber.Ctx) error {
	var req dto.NotesByTopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	docs, err := c.noteService.FindByTopic(ctx.Context(), currentUserId(ctx), req.Topic)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get notes", docs))
}

func (c *noteController) Activity(ctx *fiber.Ctx) error {
	logs, err := c.noteService.Activity(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get activity", logs))
}

// Ingest accepts a multipart upload, runs it through OCR and summarization,
// and stores the result. The temp file is removed whatever happens.
func (c *noteController) Ingest(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.BadRequest("No file part")
	}
	if fileHeader.Filename == "" {
		return serverutils.BadRequest("No selected file")
	}

	tempPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := ctx.SaveFile(fileHeader, tempPath); err != nil {
		return err
	}
	defer os.Remove(tempPath)

	engine := ctx.FormValue("engine")
	language := ctx.FormValue("language")

	res, err := c.noteService.IngestDocument(ctx.Context(), currentUserId(ctx), tempPath, fileHeader.Filename, engine, language)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process document", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid note id")
	}

	res, err := c.noteService.Show(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid note id")
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.noteService.Update(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid note id")
	}

	if err := c.noteService.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) ToggleFavorite(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid note id")
	}

	res, err := c.noteService.ToggleFavorite(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle favorite", res))
}

func (c *noteController) FactCheck(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid note id")
	}

	res, err := c.noteService.FactCheckNote(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fact-check note", res))
}

func (c *noteController) ListFactChecks(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("Invalid note id")
	}

	res, err := c.noteService.ListFactChecks(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get fact-checks", res))
}
