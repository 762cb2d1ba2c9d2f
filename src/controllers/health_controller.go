package controllers

import (
	"context"
	"time"

	"mergington-activities/src/database"
	"mergington-activities/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// HealthController reports liveness and, when configured, broker reachability.
type HealthController struct {
	redis *redis.Client
	log   *zap.Logger
}

func NewHealthController(client *redis.Client, log *zap.Logger) *HealthController {
	return &HealthController{redis: client, log: log}
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Failure      503  {object}  models.HealthResponse
// @Router       /healthz [get]
func (hc *HealthController) Health(c *fiber.Ctx) error {
	if hc.redis == nil {
		return c.JSON(models.HealthResponse{Status: "ok"})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := database.PingRedis(ctx, hc.redis); err != nil {
		hc.log.Warn("health check: redis unreachable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.HealthResponse{Status: "degraded", Redis: "down"})
	}
	return c.JSON(models.HealthResponse{Status: "ok", Redis: "up"})
}
