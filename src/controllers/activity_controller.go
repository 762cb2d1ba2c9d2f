package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"mergington-activities/src/metrics"
	"mergington-activities/src/services/activities"
	"mergington-activities/src/services/notifications"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// ActivityController serves the activity and roster endpoints.
type ActivityController struct {
	registry *activities.Registry
	notifier notifications.Notifier
	metrics  *metrics.Collector
	log      *zap.Logger
}

func NewActivityController(registry *activities.Registry, notifier notifications.Notifier, m *metrics.Collector, log *zap.Logger) *ActivityController {
	if notifier == nil {
		notifier = notifications.NopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ActivityController{
		registry: registry,
		notifier: notifier,
		metrics:  m,
		log:      log,
	}
}

// GetAllActivities godoc
// @Summary      Get all activities
// @Description  Returns every activity keyed by name
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Router       /activities [get]
func (ac *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	return c.JSON(ac.registry.List())
}

// rosterParams reads the activity name and email. Only a missing email is
// rejected here; the name is decoded once and any format problem is left to
// the registry lookup, which reports it as not found.
func (ac *ActivityController) rosterParams(c *fiber.Ctx) (string, string, error) {
	// ค่าจาก fiber ใช้ได้แค่ใน handler ต้อง copy ก่อนเก็บลง registry
	raw := fiberutils.CopyString(c.Params("activityName"))
	name, err := url.PathUnescape(raw)
	if err != nil {
		name = raw
	}
	email := fiberutils.CopyString(c.Query("email"))
	if email == "" {
		return "", "", fmt.Errorf("email query parameter is required")
	}
	return name, email, nil
}

// classify maps registry errors to an HTTP status and a metrics label.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, activities.ErrActivityNotFound):
		return fiber.StatusNotFound, "activity_not_found"
	case errors.Is(err, activities.ErrParticipantNotFound):
		return fiber.StatusNotFound, "participant_not_found"
	case errors.Is(err, activities.ErrAlreadyEnrolled):
		return fiber.StatusBadRequest, "already_enrolled"
	case errors.Is(err, activities.ErrActivityFull):
		return fiber.StatusBadRequest, "full"
	default:
		return fiber.StatusInternalServerError, "error"
	}
}

func (ac *ActivityController) observe(operation, outcome string) {
	if ac.metrics != nil {
		ac.metrics.ObserveRequest(operation, outcome)
	}
}

// notify ไม่ทำให้ request ล้ม เพราะ roster เปลี่ยนไปแล้ว
func (ac *ActivityController) notify(ctx context.Context, operation, name, email string, send func(context.Context, string, string) error) {
	if err := send(ctx, name, email); err != nil {
		ac.log.Warn("enqueue notification failed",
			zap.String("operation", operation),
			zap.String("activity", name),
			zap.String("email", email),
			zap.Error(err),
		)
	}
}
