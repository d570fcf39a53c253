package main

import (
	"context"
	"log"
	"os"

	"campusvoice/cmd/fx/block_fx"
	"campusvoice/cmd/fx/controllers_fx"
	"campusvoice/cmd/fx/course_fx"
	"campusvoice/cmd/fx/db_fx"
	"campusvoice/cmd/fx/feedback_fx"
	"campusvoice/cmd/fx/identity_fx"
	"campusvoice/cmd/fx/mail_fx"
	"campusvoice/cmd/fx/memcache_fx"
	"campusvoice/internal/api/controllers"
	"campusvoice/pkg/middleware"
	"campusvoice/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		identity_fx.Module,
		course_fx.Module,
		feedback_fx.Module,
		block_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at :" + os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	feedbackController *controllers.FeedbackController,
	blockController *controllers.BlockController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, courseController, feedbackController, blockController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	feedbackController *controllers.FeedbackController,
	blockController *controllers.BlockController) {

	r.POST("/students/signup", authController.RegisterStudent)
	r.POST("/students/login", authController.LoginStudent)
	r.POST("/admins/signup", authController.RegisterAdmin)
	r.POST("/admins/login", authController.LoginAdmin)
	r.POST("/password/forgot", authController.ForgotPassword)
	r.POST("/password/reset", authController.ResetPassword)

	student := r.Group("/", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(utils.RoleStudent))
	student.PUT("/students/me/password", authController.ChangePassword)
	student.PUT("/students/me/phone", authController.SetPhone)
	student.PUT("/students/me/date-of-birth", authController.SetDateOfBirth)
	student.PUT("/students/me/address", authController.SetAddress)
	student.POST("/feedback", feedbackController.SubmitFeedback)
	student.PUT("/feedback/:id", feedbackController.EditFeedback)
	student.DELETE("/feedback/:id", feedbackController.DeleteFeedback)
	student.GET("/feedback/mine", feedbackController.ListMyFeedback)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(utils.RoleAdmin))
	admin.POST("/courses", courseController.CreateCourse)
	admin.GET("/courses", courseController.ListCourses)
	admin.PUT("/courses/:id", courseController.RenameCourse)
	admin.DELETE("/courses/:id", courseController.DeleteCourse)
	admin.GET("/feedback", feedbackController.ListAdminFeedback)
	admin.POST("/blocks", blockController.BlockStudent)
	admin.DELETE("/blocks/:studentId", blockController.UnblockStudent)
}
