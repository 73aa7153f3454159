package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"edudesk/internal/store"
)

type verifyRequest struct {
	Approved bool   `json:"approved"`
	Remark   string `json:"remark" validate:"lte=500"`
}

// VerifyEducation applies an admin verification decision. Approval
// copies every field's current value into its last_verified_value and
// stamps the record; rejection records the remark and leaves the
// record pending.
func (s *Server) VerifyEducation(c *fiber.Ctx) error {
	id := c.Params("id")

	req := &verifyRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	_, ownerID, err := s.educations.Get(c.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Education record not found"})
	}
	if err != nil {
		s.logger.Error("load education", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load education record"})
	}

	updated, err := s.educations.SetVerification(c.Context(), id, req.Approved, req.Remark)
	if err != nil {
		s.logger.Error("verify education", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify education record"})
	}
	s.invalidate(c, ownerID)
	return c.JSON(updated)
}
