package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	v1 "github.com/pasarkita/marketplace/internal/api/handler/v1"
	"github.com/pasarkita/marketplace/internal/api/middleware"
	"github.com/pasarkita/marketplace/internal/config"
	"github.com/pasarkita/marketplace/internal/repository"
	"github.com/pasarkita/marketplace/internal/repository/dao"
	"github.com/pasarkita/marketplace/internal/service"
	"github.com/pasarkita/marketplace/internal/session"
)

type Server struct {
	Config   *config.AppConfig
	Router   *gin.Engine
	Sessions *session.Manager
}

func NewServer(conf *config.AppConfig, db *gorm.DB, sessions *session.Manager) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.LoadHTMLGlob(conf.API.TemplatesGlob)

	s := &Server{
		Config:   conf,
		Router:   engine,
		Sessions: sessions,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	sellerHandler := s.initSellerHandler(db)
	buyerHandler := s.initBuyerHandler(db)
	priceHandler := s.initPriceHandler(db)
	stockHandler := s.initStockHandler(db)
	s.MountHandlers(authHandler, userHandler, sellerHandler, buyerHandler, priceHandler, stockHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(svc, s.Sessions)
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)

	return v1.NewUserHandler(svc)
}

func (s *Server) initSellerHandler(db *gorm.DB) *v1.SellerHandler {
	sellerDAO := dao.NewSellerDAO(db)
	repo := repository.NewSellerRepository(sellerDAO)
	svc := service.NewSellerService(repo)

	return v1.NewSellerHandler(svc)
}

func (s *Server) initBuyerHandler(db *gorm.DB) *v1.BuyerHandler {
	buyerDAO := dao.NewBuyerDAO(db)
	repo := repository.NewBuyerRepository(buyerDAO)
	svc := service.NewBuyerService(repo)

	return v1.NewBuyerHandler(svc)
}

func (s *Server) initPriceHandler(db *gorm.DB) *v1.PriceHandler {
	priceDAO := dao.NewPriceDAO(db)
	repo := repository.NewPriceRepository(priceDAO)
	svc := service.NewPriceService(repo)

	return v1.NewPriceHandler(svc)
}

func (s *Server) initStockHandler(db *gorm.DB) *v1.StockHandler {
	stockDAO := dao.NewStockDAO(db)
	repo := repository.NewStockRepository(stockDAO)
	svc := service.NewStockService(repo)

	return v1.NewStockHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.CountRequests())
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	sellerHandler *v1.SellerHandler,
	buyerHandler *v1.BuyerHandler,
	priceHandler *v1.PriceHandler,
	stockHandler *v1.StockHandler,
) {
	s.Router.GET("/", authHandler.HandleIndex)
	s.Router.GET("/register", authHandler.HandleShowRegister)
	s.Router.POST("/register", authHandler.HandleRegister)
	s.Router.GET("/login", authHandler.HandleShowLogin)
	s.Router.POST("/login", authHandler.HandleLogin)

	s.Router.GET("/healthcheck", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	guarded := s.Router.Group("", middleware.RequireSession(s.Sessions))
	{
		guarded.POST("/logout", authHandler.HandleLogout)

		guarded.GET("/users", userHandler.HandleListUsers)
		guarded.POST("/users/add", userHandler.HandleAddUser)
		guarded.POST("/users/edit/:id", userHandler.HandleEditUser)
		guarded.POST("/users/delete/:id", userHandler.HandleDeleteUser)

		guarded.GET("/sellers", sellerHandler.HandleListSellers)
		guarded.POST("/sellers/add", sellerHandler.HandleAddSeller)
		guarded.GET("/sellers/edit/:id", sellerHandler.HandleShowEditSeller)
		guarded.POST("/sellers/edit/:id", sellerHandler.HandleEditSeller)
		guarded.POST("/sellers/delete/:id", sellerHandler.HandleDeleteSeller)

		guarded.GET("/buyers", buyerHandler.HandleListBuyers)
		guarded.POST("/buyers/add", buyerHandler.HandleAddBuyer)

		guarded.GET("/prices", priceHandler.HandleListPrices)
		guarded.POST("/prices/add", priceHandler.HandleAddPrice)

		guarded.GET("/stocks", stockHandler.HandleListStocks)
		guarded.POST("/stocks/add", stockHandler.HandleAddStock)
	}
}
