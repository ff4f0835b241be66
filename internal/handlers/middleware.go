package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SAP-F-2025/survey-service/internal/config"
	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/services"
	"github.com/SAP-F-2025/survey-service/internal/utils"
	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

var errMissingToken = errors.New("missing bearer token")

// Identity is the authenticated caller
type Identity struct {
	UserID   string
	Username string
	FullName string
	Email    string
	Admin    bool
}

func (i *Identity) user() *models.User {
	return &models.User{
		ID:       i.UserID,
		Username: i.Username,
		FullName: i.FullName,
		Email:    i.Email,
	}
}

// Authenticator turns a bearer token into an identity
type Authenticator interface {
	Authenticate(token string) (*Identity, error)
}

// CasdoorAuthenticator verifies tokens issued by Casdoor
type CasdoorAuthenticator struct {
	adminGroup string
}

func NewCasdoorAuthenticator(cfg config.CasdoorConfig) *CasdoorAuthenticator {
	casdoorsdk.InitConfig(cfg.Endpoint, cfg.ClientID, cfg.ClientSecret, cfg.Certificate,
		cfg.OrganizationName, cfg.ApplicationName)
	return &CasdoorAuthenticator{adminGroup: cfg.AdminGroup}
}

func (a *CasdoorAuthenticator) Authenticate(token string) (*Identity, error) {
	claims, err := casdoorsdk.ParseJwtToken(token)
	if err != nil {
		return nil, err
	}

	identity := &Identity{
		UserID:   claims.User.Id,
		Username: claims.User.Name,
		FullName: claims.User.DisplayName,
		Email:    claims.User.Email,
		Admin:    claims.User.IsAdmin,
	}
	for _, group := range claims.User.Groups {
		// Casdoor group names may be qualified as "<org>/<group>"
		if group == a.adminGroup || strings.HasSuffix(group, "/"+a.adminGroup) {
			identity.Admin = true
		}
	}
	return identity, nil
}

// DevAuthenticator trusts the token as a user id. Never used in production.
type DevAuthenticator struct{}

func (DevAuthenticator) Authenticate(token string) (*Identity, error) {
	return &Identity{UserID: token, Username: token, Admin: strings.HasPrefix(token, "admin")}, nil
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", errMissingToken
	}
	return strings.TrimSpace(token), nil
}

// AuthMiddleware authenticates the caller and records them as a user so
// answer sheets and exports can refer to them.
func AuthMiddleware(auth Authenticator, users services.UserService, logger utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
			return
		}

		identity, err := auth.Authenticate(token)
		if err != nil || identity.UserID == "" {
			logger.Warn("Rejected token", "error", err, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid token"})
			return
		}

		if err := users.Sync(c.Request.Context(), identity.user()); err != nil {
			logger.LogError(err, "Failed to sync user", "user_id", identity.UserID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextIsAdmin, identity.Admin)
		c.Next()
	}
}

// RequestIDMiddleware passes the X-Request-ID header down to service logs
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			c.Request = c.Request.WithContext(services.WithRequestID(c.Request.Context(), requestID))
		}
		c.Next()
	}
}

// AdminMiddleware requires an authenticated administrator
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "Administrator access required"})
			return
		}
		c.Next()
	}
}
