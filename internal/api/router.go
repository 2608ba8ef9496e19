// Package api wires the gin routes. Handlers stay thin: parse, call the
// service, map errors.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dayloop/dayloop/internal/auth"
	"github.com/dayloop/dayloop/internal/blog"
	"github.com/dayloop/dayloop/internal/habits"
	"github.com/dayloop/dayloop/internal/health"
	"github.com/dayloop/dayloop/internal/summary"
)

// Deps bundles what the router needs.
type Deps struct {
	DB        *gorm.DB
	Summaries *summary.Service
	Posts     *blog.Service
	Logger    *slog.Logger
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", gin.WrapF(health.Handler))

	authed := r.Group("/api", auth.RequireUser(deps.DB))
	{
		authed.POST("/tasks", CreateTaskHandler(deps.DB, deps.Logger))
		authed.GET("/tasks", ListTasksHandler(deps.DB))
		authed.GET("/tasks/:id", GetTaskHandler(deps.DB))
		authed.PATCH("/tasks/:id", UpdateTaskHandler(deps.DB, deps.Logger))
		authed.DELETE("/tasks/:id", DeleteTaskHandler(deps.DB, deps.Logger))

		authed.POST("/summaries/:date/generate", GenerateSummaryHandler(deps.Summaries))
		authed.GET("/summaries/:date", GetSummaryHandler(deps.Summaries))
		authed.PATCH("/summaries/:date", UpdateSummaryHandler(deps.Summaries))
		authed.DELETE("/summaries/:date", DeleteSummaryHandler(deps.Summaries))
		authed.POST("/summaries/:date/publish", PublishSummaryHandler(deps.Summaries, deps.Logger))

		authed.GET("/insights/trends", TrendsHandler(deps.Summaries))
		authed.GET("/insights/weekly", WeeklyInsightsHandler(deps.Summaries))

		authed.GET("/posts", ListPostsHandler(deps.Posts))
		authed.GET("/posts/:id", GetPostHandler(deps.Posts))

		authed.POST("/habits", habits.CreateHabitHandler(deps.DB))
		authed.GET("/habits", habits.ListHabitsHandler(deps.DB))
		authed.GET("/habits/:id", habits.GetHabitHandler(deps.DB))
		authed.POST("/habits/:id/log", habits.LogHabitHandler(deps.DB))
		authed.DELETE("/habits/:id", habits.DeleteHabitHandler(deps.DB))
	}

	return r
}
