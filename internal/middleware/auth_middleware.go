package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petrolife-backend-go/internal/core"
	"petrolife-backend-go/internal/models"
)

// sessionKey is the gin context key holding the resolved models.Session.
const sessionKey = "session"

// ErrorResponse is a local definition for sending standardized error messages.
// It mirrors the one in internal/api/dto_models.go to avoid import cycles.
type ErrorResponse struct {
	Error    string `json:"error"`
	Details  string `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"` // path the client should navigate to
}

// AuthMiddleware provides the two-layer route guard: Authenticate verifies the
// Firebase ID token and resolves the principal's tenant role; RequireRoles
// compares the resolved role against the set a route demands.
type AuthMiddleware struct {
	firebaseAuthClient *auth.Client
	roleService        core.RoleService
	logger             *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
// It panics on nil dependencies, as routes cannot be secured without them.
func NewAuthMiddleware(fbAuthClient *auth.Client, roleService core.RoleService, logger *zap.Logger) *AuthMiddleware {
	if fbAuthClient == nil {
		panic("Firebase Auth client is not initialized for AuthMiddleware")
	}
	if roleService == nil {
		panic("RoleService is not initialized for AuthMiddleware")
	}
	if logger == nil {
		panic("AuthMiddleware requires a non-nil zap.Logger instance")
	}
	return &AuthMiddleware{firebaseAuthClient: fbAuthClient, roleService: roleService, logger: logger}
}

// Authenticate is the authentication gate. It verifies the Bearer token,
// resolves the principal's role against the tenant registries, and stores the
// resulting Session in the gin context. Nothing downstream runs until both
// steps succeed.
//
// A principal whose email matches no registry is unauthorized: the response
// carries the login path so the client clears its cached state and signs out.
// Backend errors during the registry probe are logged and leave the principal
// unauthenticated without signing them out.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required", Redirect: models.LoginPath})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'", Redirect: models.LoginPath})
			return
		}
		idToken := parts[1]

		token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			m.logger.Warn("Failed to verify Firebase ID token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token", Redirect: models.LoginPath})
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication token carries no email claim", Redirect: models.LoginPath})
			return
		}

		roleInfo, err := m.roleService.Resolve(c.Request.Context(), email)
		if err != nil {
			if err == core.ErrRoleNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
					Error:    "No account is registered for this email",
					Redirect: models.LoginPath,
				})
				return
			}
			m.logger.Error("Role resolution failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Unable to resolve account role, please try again"})
			return
		}

		session := &models.Session{
			UID:          token.UID,
			Email:        email,
			UserType:     roleInfo.UserType,
			RedirectPath: roleInfo.RedirectPath,
			TenantID:     roleInfo.TenantID,
		}
		if name, ok := token.Claims["name"].(string); ok {
			session.DisplayName = name
		}
		if picture, ok := token.Claims["picture"].(string); ok {
			session.PhotoURL = picture
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireRoles is the role gate, layered on top of Authenticate. When the
// session's role is outside the required set, the client is redirected to the
// dashboard matching its actual role with a human-readable denial message.
// A missing session despite passing Authenticate counts as unauthenticated.
func (m *AuthMiddleware) RequireRoles(roles ...models.UserType) gin.HandlerFunc {
	required := make(map[models.UserType]bool, len(roles))
	for _, role := range roles {
		required[role] = true
	}

	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated", Redirect: models.LoginPath})
			return
		}

		if !required[session.UserType] {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Error:    "Access denied: this page is not available for your account type",
				Redirect: models.DashboardPathFor(session.UserType),
			})
			return
		}

		c.Next()
	}
}

// GetSession retrieves the Session stored by Authenticate, if any.
func GetSession(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*models.Session)
	return session, ok && session != nil
}
