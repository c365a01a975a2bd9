package handlers

import (
	"strconv"

	"github.com/corems/corems-backend/internal/claims"
	"github.com/corems/corems-backend/internal/dto"
	"github.com/corems/corems-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ComplaintHandler struct {
	complaintService  *services.ComplaintService
	visibilityService *services.VisibilityService
}

func NewComplaintHandler(complaintService *services.ComplaintService, visibilityService *services.VisibilityService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService:  complaintService,
		visibilityService: visibilityService,
	}
}

// List returns the caller-scoped complaint list, newest first. The scope is
// derived from the verified token; legacy user_id/admin_id query params are
// ignored.
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	callerID, err := claims.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	complaints, err := h.visibilityService.VisibleComplaints(callerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(complaints)
}

func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	callerID, err := claims.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	complaint, err := h.complaintService.File(callerID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateComplaintResponse{
		Message:     "Complaint added successfully",
		ComplaintID: complaint.ID,
	})
}

func (h *ComplaintHandler) Search(c *fiber.Ctx) error {
	callerID, err := claims.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	complaints, err := h.complaintService.Search(callerID, c.Query("q"), limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(complaints)
}

func (h *ComplaintHandler) Get(c *fiber.Ctx) error {
	callerID, err := claims.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	complaintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid complaint ID",
		})
	}

	detail, err := h.complaintService.Get(callerID, complaintID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(detail)
}

func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	callerID, err := claims.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	complaintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid complaint ID",
		})
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.complaintService.UpdateStatus(callerID, complaintID, req.Status, req.UpdateText); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Status updated successfully"})
}

func (h *ComplaintHandler) History(c *fiber.Ctx) error {
	callerID, err := claims.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	complaintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid complaint ID",
		})
	}

	updates, err := h.complaintService.History(callerID, complaintID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(updates)
}
