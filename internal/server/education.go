package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"edudesk/internal/cache"
	"edudesk/internal/education"
	"edudesk/internal/store"
)

// ListEducation returns the authenticated student's records, from the
// cache when it holds them.
func (s *Server) ListEducation(c *fiber.Ctx) error {
	studentID := claimString(c, "user_id")

	if records, err := s.cache.GetEducation(c.Context(), studentID); err == nil {
		return c.JSON(records)
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("education cache read", "err", err)
	}

	records, err := s.educations.ListByStudent(c.Context(), studentID)
	if err != nil {
		s.logger.Error("list education", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load education records"})
	}
	if records == nil {
		records = []education.Record{}
	}

	if err := s.cache.SetEducation(c.Context(), studentID, records); err != nil {
		s.logger.Warn("education cache write", "err", err)
	}
	return c.JSON(records)
}

// CreateEducation stores a new record for the authenticated student.
// The client-sent last_verified_values are discarded by the store.
func (s *Server) CreateEducation(c *fiber.Ctx) error {
	studentID := claimString(c, "user_id")

	payload := &education.Payload{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validateDetails(payload.EducationDetails); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := s.educations.Create(c.Context(), studentID, payload.EducationDetails)
	if err != nil {
		s.logger.Error("create education", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create education record"})
	}
	s.invalidate(c, studentID)
	return c.Status(fiber.StatusCreated).JSON(record)
}

// UpdateEducation replaces an owned record's details and resets its
// verification state.
func (s *Server) UpdateEducation(c *fiber.Ctx) error {
	studentID := claimString(c, "user_id")
	id := c.Params("id")

	payload := &education.Payload{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validateDetails(payload.EducationDetails); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := s.requireOwner(c, id, studentID); err != nil {
		return err
	}
	record, err := s.educations.Update(c.Context(), id, payload.EducationDetails)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Education record not found"})
		}
		s.logger.Error("update education", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update education record"})
	}
	s.invalidate(c, studentID)
	return c.JSON(record)
}

// DeleteEducation removes an owned record.
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	studentID := claimString(c, "user_id")
	id := c.Params("id")

	if err := s.requireOwner(c, id, studentID); err != nil {
		return err
	}
	if err := s.educations.Delete(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Education record not found"})
		}
		s.logger.Error("delete education", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete education record"})
	}
	s.invalidate(c, studentID)
	return c.SendStatus(fiber.StatusNoContent)
}

// requireOwner answers nil only when the record exists and belongs to
// the student. Responses are written on failure.
func (s *Server) requireOwner(c *fiber.Ctx, id, studentID string) error {
	_, ownerID, err := s.educations.Get(c.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Education record not found"})
	}
	if err != nil {
		s.logger.Error("load education", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load education record"})
	}
	if ownerID != studentID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your education record"})
	}
	return nil
}

func (s *Server) invalidate(c *fiber.Ctx, studentID string) {
	if err := s.cache.InvalidateEducation(c.Context(), studentID); err != nil {
		s.logger.Warn("education cache invalidate", "err", err)
	}
}

// validateDetails enforces the required current values. Optional
// fields may be empty but must be present as pairs, which BodyParser
// guarantees via the struct shape.
func validateDetails(d education.Details) error {
	if strings.TrimSpace(d.Degree.CurrentValue) == "" {
		return errors.New("degree is required")
	}
	if strings.TrimSpace(d.Institution.CurrentValue) == "" {
		return errors.New("institution is required")
	}
	if strings.TrimSpace(d.Year.CurrentValue) == "" {
		return errors.New("year is required")
	}
	return nil
}
