package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reading-prefs-go/internal/common"
	"reading-prefs-go/internal/config"
	"reading-prefs-go/internal/logging"
	"reading-prefs-go/internal/models"
	"reading-prefs-go/internal/preferences"
)

// Accounts is the credential store the auth handlers talk to.
type Accounts interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// Preferences is the per-user settings store.
type Preferences interface {
	Save(ctx context.Context, userID string, patch preferences.Patch) (*models.Preference, error)
	Get(ctx context.Context, userID string) (*models.Preference, error)
}

type Server struct {
	cfg      *config.Config
	accounts Accounts
	prefs    Preferences
	log      logging.Logger
}

func NewServer(cfg *config.Config, accounts Accounts, prefs Preferences, log logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(requestLogging(log))
	r.Use(timeout(cfg.RequestTimeout))

	s := &Server{cfg: cfg, accounts: accounts, prefs: prefs, log: log}

	r.POST("/register", s.register)
	r.POST("/login", s.login)
	r.POST("/preferences", s.savePreferences)
	r.GET("/preferences/:userId", s.getPreferences)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

// writeError maps store errors onto status codes. Anything unexpected is
// logged and reported as a bare 500 so no internals reach the client.
func (s *Server) writeError(c *gin.Context, op string, err error) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error(), "details": ve.Details})
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, common.ErrDuplicateIdentity):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, common.ErrAuthFailure):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "No preferences found"})
	default:
		s.log.Error(c.Request.Context(), op+" error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
