package router

import (
	"github.com/binagroup/complex-api-server/internal/comment"
	"github.com/binagroup/complex-api-server/internal/complex"
	"github.com/binagroup/complex-api-server/internal/config"
	"github.com/binagroup/complex-api-server/internal/member"
	"github.com/binagroup/complex-api-server/internal/merchant"
	"github.com/binagroup/complex-api-server/internal/meta"
	"github.com/binagroup/complex-api-server/internal/news"
	"github.com/binagroup/complex-api-server/internal/shared/database"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repositories
	complexRepository := complex.NewComplexRepository()
	merchantRepository := merchant.NewMerchantRepository()
	newsRepository := news.NewNewsRepository()
	commentRepository := comment.NewCommentRepository()
	memberRepository := member.NewMemberRepository()

	// services
	complexService := complex.NewComplexService(db.DB, complexRepository)
	merchantService := merchant.NewMerchantService(db.DB, merchantRepository)
	newsService := news.NewNewsService(db.DB, newsRepository)
	commentService := comment.NewCommentService(db.DB, commentRepository)
	memberService := member.NewMemberService(db.DB, memberRepository, complexRepository)

	// handlers
	complexHandler := complex.NewComplexHandler(complexService)
	merchantHandler := merchant.NewMerchantHandler(merchantService)
	newsHandler := news.NewNewsHandler(newsService)
	commentHandler := comment.NewCommentHandler(commentService)
	memberHandler := member.NewMemberHandler(memberService)

	complexes := router.Group("/complexes")
	{
		complexes.POST("/create", complexHandler.Create)
		complexes.GET("/get", complexHandler.List)
		complexes.PUT("/update/:id", complexHandler.Update)
		complexes.DELETE("/delete/:id", complexHandler.Delete)
	}

	merchants := router.Group("/merchants")
	{
		merchants.POST("/create", merchantHandler.Create)
		merchants.GET("/get", merchantHandler.List)
		merchants.PUT("/update/:id", merchantHandler.Update)
		merchants.DELETE("/delete/:id", merchantHandler.Delete)
	}

	latestNews := router.Group("/latestNews")
	{
		latestNews.POST("/create", newsHandler.Create)
		latestNews.GET("/get", newsHandler.List)
		latestNews.PUT("/update/:id", newsHandler.Update)
		latestNews.DELETE("/delete/:id", newsHandler.Delete)
	}

	comments := router.Group("/comments")
	{
		comments.POST("/create", commentHandler.Create)
		comments.GET("/get", commentHandler.List)
		comments.DELETE("/delete/:id", commentHandler.Delete)
	}

	members := router.Group("/members")
	{
		members.POST("/create", memberHandler.Create)
		members.GET("/get", memberHandler.List)
	}
}
