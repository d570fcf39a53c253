package controllers_fx

import (
	"campusvoice/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	controllers.NewAuthController,
	controllers.NewCourseController,
	controllers.NewFeedbackController,
	controllers.NewBlockController,
)
