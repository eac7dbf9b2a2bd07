package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RichardKnop/machinery/v1"

	"github.com/wastezero/wastezero-api/logmodule"
	"github.com/wastezero/wastezero-api/store"
	"github.com/wastezero/wastezero-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.WasteZeroCore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	background *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:         store.NewWasteZeroStore(ormDB, mongoStore, background),
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	// api routes other than `/auth` require an authenticated account
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateProfile)
		accountRoute.PUT("/me/password", s.accountChangePassword)
		accountRoute.GET("/me/stats", s.accountStats)
		accountRoute.GET("/volunteers", s.listVolunteers)
	}

	pickupRoute := apiRoute.Group("/pickups")
	{
		pickupRoute.POST("", s.createPickup)
		pickupRoute.GET("/my", s.listMyPickups)
		pickupRoute.GET("/opportunities", s.listOpportunities)
		pickupRoute.GET("/all", s.listAllPickups)
	}

	// item routes live under a singular prefix to keep the static
	// pickup listings free of wildcard siblings
	pickupItemRoute := apiRoute.Group("/pickup")
	{
		pickupItemRoute.GET("/:pickupID", s.getPickup)
		pickupItemRoute.PUT("/:pickupID/accept", s.acceptPickup)
		pickupItemRoute.PUT("/:pickupID/complete", s.completePickup)
		pickupItemRoute.PUT("/:pickupID/cancel", s.cancelPickup)
		pickupItemRoute.DELETE("/:pickupID", s.deletePickup)
	}

	messageRoute := apiRoute.Group("/messages")
	{
		messageRoute.POST("", s.sendMessage)
		messageRoute.GET("/conversations", s.getConversations)
		messageRoute.GET("/with/:partnerID", s.getThread)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.adminRequired())
	{
		adminRoute.GET("/stats", s.platformStats)
		adminRoute.GET("/users", s.adminListUsers)
		adminRoute.GET("/all-users", s.adminAllUsers)
		adminRoute.PUT("/users/:userID/suspend", s.adminSuspendUser)
		adminRoute.DELETE("/users/:userID", s.adminDeleteUser)
		adminRoute.GET("/logs", s.adminLogs)
		adminRoute.GET("/reports/users", s.adminReportUsers)
		adminRoute.GET("/reports/pickups", s.adminReportPickups)
		adminRoute.GET("/reports/waste", s.adminReportWaste)
		adminRoute.GET("/reports/volunteers", s.adminReportVolunteers)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	// render the error message in the caller's language when a
	// translation exists
	localized, err := utils.NewLocalizer(c.GetHeader("Accept-Language")).
		Localize(&i18n.LocalizeConfig{MessageID: errorMessageID(obj.Code)})
	if err == nil && localized != "" {
		obj.Message = localized
	}

	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
