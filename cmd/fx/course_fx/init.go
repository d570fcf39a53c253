package course_fx

import (
	"campusvoice/internal/repositories"
	"campusvoice/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideCourseRepo, provideCourseService)

func provideCourseRepo(db *gorm.DB) repositories.CourseRepository {
	return repositories.NewCourseRepository(db)
}

func provideCourseService(courseRepo repositories.CourseRepository) services.CourseServiceInterface {
	return services.NewCourseService(courseRepo)
}
