package feedback_fx

import (
	"campusvoice/internal/repositories"
	"campusvoice/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	courseRepo repositories.CourseRepository,
	blockRepo repositories.BlockRepository,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, courseRepo, blockRepo)
}
