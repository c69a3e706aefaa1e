// Package httpapi exposes the CivicWatch HTTP/JSON surface using gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shivtchandra/CivicWatch/internal/logging"
	"github.com/shivtchandra/CivicWatch/internal/server/models"
	"github.com/shivtchandra/CivicWatch/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type userService interface {
	Register(ctx context.Context, email, password, name string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	GetByID(ctx context.Context, id string) (*models.PublicUser, error)
	UpdateProfile(ctx context.Context, id, name, city, phone string) (*models.PublicUser, error)
}

type reportService interface {
	Create(ctx context.Context, ownerID string, params *services.CreateReportParams) (*models.Report, error)
	List(ctx context.Context, city string) ([]*models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	UpdateStatus(ctx context.Context, id, status, requesterID string) (*models.Report, error)
	Delete(ctx context.Context, id, requesterID string) error
}

type messageService interface {
	EnsureConversation(ctx context.Context, requesterID, otherID string) (*models.Conversation, error)
	ListConversations(ctx context.Context, requesterID string) ([]*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID, requesterID string) ([]*models.Message, error)
	Send(ctx context.Context, conversationID, senderID, content string) (*models.Message, error)
}

type imageService interface {
	PresignPut(ctx context.Context) (string, string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

// Server is the HTTP front of the application. Routes are registered once at
// construction; Run blocks until the context is cancelled.
type Server struct {
	address   string
	engine    *gin.Engine
	logger    logging.Logger
	jwtSecret []byte

	users    userService
	reports  reportService
	messages messageService
	images   imageService
}

func NewServer(address string, l logging.Logger, secretKey string,
	us userService, rs reportService, ms messageService, is imageService) *Server {

	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
		users:     us,
		reports:   rs,
		messages:  ms,
		images:    is,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(s.requestLogger())
	s.registerRoutes(engine)
	s.engine = engine

	return s
}

// Handler returns the routed handler; used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes(engine *gin.Engine) {
	api := engine.Group("/api")

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	api.GET("/reports", s.handleListReports)
	api.GET("/reports/:id", s.handleGetReport)
	api.GET("/uploads/url", s.handleGetUploadURL)

	authed := api.Group("")
	authed.Use(s.authRequired())
	{
		authed.GET("/me", s.handleMe)
		authed.PATCH("/me", s.handleUpdateProfile)

		authed.POST("/reports", s.handleCreateReport)
		authed.PATCH("/reports/:id", s.handleUpdateReportStatus)
		authed.DELETE("/reports/:id", s.handleDeleteReport)

		authed.POST("/uploads", s.handleCreateUpload)

		authed.POST("/conversations", s.handleEnsureConversation)
		authed.GET("/conversations", s.handleListConversations)
		authed.GET("/conversations/:id/messages", s.handleListMessages)
		authed.POST("/conversations/:id/messages", s.handleSendMessage)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
