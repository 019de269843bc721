package router

import (
	"github.com/MatevzKlancar/phyacc/internal/config"
	"github.com/MatevzKlancar/phyacc/internal/handler"
	"github.com/MatevzKlancar/phyacc/internal/logic"
	"github.com/MatevzKlancar/phyacc/internal/middleware"
	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/MatevzKlancar/phyacc/internal/solana"
	"github.com/MatevzKlancar/phyacc/internal/storage"
	"github.com/MatevzKlancar/phyacc/internal/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, solClient *solana.Client, store *storage.Service, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "phyacc-launchpad",
		})
	})

	// 上传的图片公开访问
	r.Static("/uploads", store.Dir())

	// 数据访问层
	walletRepo := repository.NewWalletRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	updateRepo := repository.NewUpdateRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// 业务逻辑层
	projectLogic := logic.NewProjectLogic(walletRepo, projectRepo, milestoneRepo, solClient)
	milestoneLogic := logic.NewMilestoneLogic(milestoneRepo, projectRepo)
	updateLogic := logic.NewUpdateLogic(updateRepo, projectRepo)
	eligibilityLogic := logic.NewEligibilityLogic(solClient, cfg.Solana.MinTokenBalance)
	tokenLogic := logic.NewTokenLogic(tokenRepo, projectRepo, token.NewClient(cfg.Token))

	// API版本组
	v1 := r.Group("/api/v1")
	{
		projectHandler := handler.NewProjectHandler(projectLogic)
		milestoneHandler := handler.NewMilestoneHandler(milestoneLogic)
		updateHandler := handler.NewUpdateHandler(updateLogic)
		walletHandler := handler.NewWalletHandler(walletRepo)
		tokenHandler := handler.NewTokenHandler(tokenLogic)

		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/funding", projectHandler.GetProjectFunding)
			projects.GET("/:id/wallet", walletHandler.GetProjectWallet)
			projects.POST("/:id/milestones", milestoneHandler.CreateMilestone)
			projects.GET("/:id/milestones", milestoneHandler.GetProjectMilestones)
			projects.POST("/:id/updates", updateHandler.CreateUpdate)
			projects.GET("/:id/updates", updateHandler.GetProjectUpdates)
			projects.POST("/:id/token", tokenHandler.ConfigureToken)
			projects.POST("/:id/token/create", tokenHandler.CreateToken)
			projects.GET("/:id/token", tokenHandler.GetProjectToken)
		}

		milestones := v1.Group("/milestones")
		{
			milestones.POST("/:id/complete", milestoneHandler.CompleteMilestone)
		}

		eligibilityHandler := handler.NewEligibilityHandler(eligibilityLogic)
		v1.GET("/eligibility/:address", eligibilityHandler.CheckEligibility)

		uploadHandler := handler.NewUploadHandler(store)
		v1.POST("/uploads/image", uploadHandler.UploadImage)

		// 运维接口仅限本地访问
		admin := v1.Group("/admin", middleware.LocalOnly())
		{
			admin.GET("/wallets/stats", walletHandler.GetPoolStats)
			admin.POST("/wallets/generate", walletHandler.GenerateWallets)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
