package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/controllers"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
)

// SetupRouter configures all application routes. The whole table is mounted
// twice, bare and under /api, so clients may use either form.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	clubController *controllers.ClubController,
	membershipController *controllers.MembershipController,
	announcementController *controllers.AnnouncementController,
	eventController *controllers.EventController,
	userController *controllers.UserController,
	memberController *controllers.MemberController,
	statsController *controllers.StatsController,
) {
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:  "Endpoint not found",
			Path:   c.Request.URL.Path,
			Method: c.Request.Method,
		})
	})

	for _, group := range []*gin.RouterGroup{router.Group(""), router.Group("/api")} {
		registerRoutes(group, authController, clubController, membershipController,
			announcementController, eventController, userController, memberController,
			statsController)
	}
}

func registerRoutes(
	g *gin.RouterGroup,
	authController *controllers.AuthController,
	clubController *controllers.ClubController,
	membershipController *controllers.MembershipController,
	announcementController *controllers.AnnouncementController,
	eventController *controllers.EventController,
	userController *controllers.UserController,
	memberController *controllers.MemberController,
	statsController *controllers.StatsController,
) {
	g.GET("/", statsController.Health)
	g.GET("/health", statsController.Health)
	g.GET("/stats", statsController.GetStats)

	auth := g.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	clubs := g.Group("/clubs")
	{
		clubs.GET("", clubController.GetClubs)
		clubs.POST("", clubController.CreateClub)
		clubs.GET("/:id", clubController.GetClub)
		clubs.PUT("/:id", clubController.UpdateClub)
		clubs.DELETE("/:id", clubController.DeleteClub)

		clubs.POST("/:id/join", clubController.JoinClub)
		clubs.POST("/:id/leave", clubController.LeaveClub)
		clubs.DELETE("/:id/members/:memberId", clubController.RemoveMember)

		clubs.GET("/:id/membership", membershipController.GetMembership)
		clubs.POST("/:id/membership", membershipController.SaveMembership)
		clubs.PUT("/:id/membership", membershipController.SaveMembership)

		clubs.GET("/:id/announcements", announcementController.GetClubAnnouncements)
		clubs.POST("/:id/announcements", announcementController.CreateClubAnnouncement)
		clubs.DELETE("/:id/announcements/:announcementId", announcementController.DeleteClubAnnouncement)
	}

	announcements := g.Group("/announcements")
	{
		announcements.GET("", announcementController.GetGeneralAnnouncements)
		announcements.POST("", announcementController.CreateGeneralAnnouncement)
		announcements.DELETE("/:id", announcementController.DeleteGeneralAnnouncement)
	}

	events := g.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.POST("", eventController.CreateEvent)
		events.GET("/:id", eventController.GetEvent)
		events.PUT("/:id", eventController.UpdateEvent)
		events.DELETE("/:id", eventController.DeleteEvent)
	}

	users := g.Group("/users")
	{
		users.GET("", userController.GetUsers)
		users.GET("/:id", userController.GetUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	members := g.Group("/members")
	{
		members.GET("", memberController.GetMembers)
		members.GET("/:id", memberController.GetMember)
		members.PUT("/:id", memberController.UpdateMember)
	}
}
