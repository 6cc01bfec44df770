// file: routes/router.go
package routes

import (
	"QRHunt/config"
	"QRHunt/controllers"
	"QRHunt/middlewares"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// 认证接口全局限流
	authLimiter := rate.NewLimiter(
		rate.Every(time.Duration(cfg.AuthRateLimitWindowSecs)*time.Second/time.Duration(cfg.AuthRateLimitRequests)),
		cfg.AuthRateLimitRequests,
	)

	api := r.Group("/api")
	{
		// --- 公开接口 ---
		public := api.Group("")
		public.Use(middlewares.RateLimitMiddleware(authLimiter))
		{
			public.POST("/register", controllers.RegisterTeam)
			public.POST("/login", controllers.LoginTeam)
			public.POST("/admin/login", controllers.LoginAdmin)
		}

		// --- 登出：只要求 Token 有效，不做活跃性检查，
		// 会话已失效的客户端也能清理自己的登录状态 ---
		api.POST("/logout", middlewares.JWTAuthMiddleware(), controllers.LogoutTeam)

		// --- 队伍接口：Token 有效 + 已审批 + active_token 严格相等 ---
		team := api.Group("")
		team.Use(middlewares.JWTAuthMiddleware(), middlewares.TeamAuthMiddleware())
		{
			team.GET("/rounds", controllers.GetRounds)
			team.GET("/location-hints/:round", controllers.GetLocationHints)
			team.POST("/scan-qr", controllers.ScanQR)
			team.POST("/submit-answer", controllers.SubmitAnswer)
			team.GET("/score", controllers.GetTeamScore)
			team.GET("/leaderboard", controllers.GetLeaderboard)
		}

		// --- 管理员接口 ---
		admin := api.Group("/admin")
		admin.Use(middlewares.JWTAuthMiddleware(), middlewares.AdminAuthMiddleware())
		{
			admin.GET("/pending-teams", controllers.GetPendingTeams)
			admin.GET("/teams", controllers.GetAllTeams)
			admin.POST("/approve-team/:teamId", controllers.ApproveTeam)
			admin.POST("/force-logout/:teamId", controllers.ForceLogoutTeam)
			admin.POST("/reset-password/:teamId", controllers.ResetTeamPassword)
			admin.POST("/location-hints", controllers.UploadLocationHints)
			admin.POST("/qrcodes", controllers.UploadQRCodes)
			admin.GET("/leaderboard", controllers.AdminGetLeaderboard)
			admin.GET("/answers", controllers.GetAnswerLogs)
			admin.GET("/teams/:teamId/answers", controllers.GetTeamAnswers)
		}
	}

	return r
}
