package controllers

import (
	"fmt"

	"mergington-activities/src/metrics"
	"mergington-activities/src/models"
	"mergington-activities/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SignupForActivity godoc
// @Summary      Sign up for an activity
// @Description  Adds the email to the activity roster
// @Tags         activities
// @Produce      json
// @Param        activityName  path   string  true  "Activity name"
// @Param        email         query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{activityName}/signup [post]
func (ac *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	name, email, err := ac.rosterParams(c)
	if err != nil {
		ac.observe(metrics.OperationSignup, "missing_email")
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ac.registry.Enroll(name, email); err != nil {
		status, outcome := classify(err)
		ac.observe(metrics.OperationSignup, outcome)
		return utils.HandleError(c, status, err.Error())
	}
	ac.observe(metrics.OperationSignup, "ok")
	ac.log.Info("participant signed up", zap.String("activity", name), zap.String("email", email))

	ac.notify(c.UserContext(), metrics.OperationSignup, name, email, ac.notifier.SignedUp)

	return c.JSON(models.MessageResponse{Message: fmt.Sprintf("Signed up %s for %s", email, name)})
}

// UnregisterFromActivity godoc
// @Summary      Unregister from an activity
// @Description  Removes the email from the activity roster
// @Tags         activities
// @Produce      json
// @Param        activityName  path   string  true  "Activity name"
// @Param        email         query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{activityName}/participants [delete]
func (ac *ActivityController) UnregisterFromActivity(c *fiber.Ctx) error {
	name, email, err := ac.rosterParams(c)
	if err != nil {
		ac.observe(metrics.OperationUnregister, "missing_email")
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ac.registry.Withdraw(name, email); err != nil {
		status, outcome := classify(err)
		ac.observe(metrics.OperationUnregister, outcome)
		return utils.HandleError(c, status, err.Error())
	}
	ac.observe(metrics.OperationUnregister, "ok")
	ac.log.Info("participant unregistered", zap.String("activity", name), zap.String("email", email))

	ac.notify(c.UserContext(), metrics.OperationUnregister, name, email, ac.notifier.Unregistered)

	return c.JSON(models.MessageResponse{Message: fmt.Sprintf("Unregistered %s from %s", email, name)})
}
