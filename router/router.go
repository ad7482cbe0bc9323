package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/jwt"
	"github.com/techclub-services/common/logger"
	"github.com/techclub-services/common/response"
	authrepo "github.com/techclub-services/services/auth/repository"
)

// HandlerFunc is the signature shared by every route handler.
type HandlerFunc func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// AuthLevel controls the authentication sub-contract applied before a
// handler runs.
type AuthLevel int

const (
	// AuthNone skips authentication entirely.
	AuthNone AuthLevel = iota
	// AuthSoft attempts authentication but ignores failures; handlers see
	// the X-User-* headers only when a valid token was presented.
	AuthSoft
	// AuthBearer requires a valid token resolving to an existing user.
	AuthBearer
	// AuthAdmin additionally requires admin access.
	AuthAdmin
)

// Route is one entry of the ordered dispatch table. First match wins, so
// literal paths must be declared ahead of wildcards that could shadow them.
type Route struct {
	Method  string
	Path    string
	Auth    AuthLevel
	Handler HandlerFunc

	pattern    *regexp.Regexp
	paramNames []string
}

var paramSegment = regexp.MustCompile(`^:([A-Za-z][A-Za-z0-9]*)$`)

// compile turns the path pattern into a regex. ":name" segments become
// single-segment captures; everything else is matched literally.
func (r *Route) compile() {
	segments := strings.Split(strings.Trim(r.Path, "/"), "/")
	var b strings.Builder
	b.WriteString("^")
	for _, seg := range segments {
		b.WriteString("/")
		if m := paramSegment.FindStringSubmatch(seg); m != nil {
			r.paramNames = append(r.paramNames, m[1])
			b.WriteString("([^/]+)")
		} else {
			b.WriteString(regexp.QuoteMeta(seg))
		}
	}
	b.WriteString("$")
	r.pattern = regexp.MustCompile(b.String())
}

// match reports whether the normalized path matches, returning extracted
// path parameters.
func (r *Route) match(path string) (map[string]string, bool) {
	m := r.pattern.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := make(map[string]string, len(r.paramNames))
	for i, name := range r.paramNames {
		params[name] = m[i+1]
	}
	return params, true
}

// Router dispatches API Gateway requests across the consolidated route table.
type Router struct {
	routes   []Route
	userRepo *authrepo.UserRepository
}

// normalizePath strips the /api prefix and trailing slashes.
func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	path = strings.TrimPrefix(path, "/api")
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// tolerantBody replaces a malformed JSON body with an empty object so that
// handlers only deal with field-level validation.
func tolerantBody(body string) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "{}"
	}
	if !json.Valid([]byte(trimmed)) {
		return "{}"
	}
	return trimmed
}

// Handle is the single entrypoint for every API request.
func (rt *Router) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	method := strings.ToUpper(request.HTTPMethod)
	path := normalizePath(request.Path)

	// Preflight never reaches a handler.
	if method == http.MethodOptions {
		return response.OK(), nil
	}

	if method == http.MethodPost || method == http.MethodPut {
		request.Body = tolerantBody(request.Body)
	}

	for i := range rt.routes {
		route := &rt.routes[i]
		if route.Method != method {
			continue
		}
		params, ok := route.match(path)
		if !ok {
			continue
		}
		request.PathParameters = params
		return rt.invoke(ctx, route, request), nil
	}

	return rt.notFound(method, path), nil
}

// invoke applies the route's auth sub-contract, runs the handler, and
// translates every failure at this single boundary.
func (rt *Router) invoke(ctx context.Context, route *Route, request events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse) {
	boundaryLog := logger.Default().With(map[string]interface{}{
		"method": route.Method,
		"route":  route.Path,
	})

	defer func() {
		if r := recover(); r != nil {
			boundaryLog.Error("panic recovered: %v\n%s", r, debug.Stack())
			resp = response.Error(apperrors.NewInternal("Internal server error", fmt.Errorf("panic: %v", r)))
		}
	}()

	if err := rt.authenticate(ctx, route.Auth, &request); err != nil {
		appErr := apperrors.AsAppError(err)
		boundaryLog.Warn("auth rejected: %s", appErr.Message)
		return response.Error(appErr)
	}

	result, err := route.Handler(ctx, request)
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			boundaryLog.Error("handler failed: %v", appErr)
		}
		return response.Error(appErr)
	}
	return result
}

// authenticate resolves the bearer token per the route's auth level and
// injects the caller into X-User-* headers for handlers.
func (rt *Router) authenticate(ctx context.Context, level AuthLevel, request *events.APIGatewayProxyRequest) error {
	// Stale identity headers from the wire are never trusted.
	delete(request.Headers, "X-User-Id")
	delete(request.Headers, "X-User-Email")
	delete(request.Headers, "X-User-Name")

	if level == AuthNone {
		return nil
	}

	token := bearerToken(request.Headers)
	if token == "" {
		if level == AuthSoft {
			return nil
		}
		return apperrors.NewUnauthorized("")
	}

	claims, err := jwt.ValidateToken(token)
	if err != nil {
		if level == AuthSoft {
			return nil
		}
		return apperrors.NewUnauthorized("Invalid or expired token")
	}

	user, err := rt.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return apperrors.NewInternal("Error loading user", err)
	}
	if user == nil {
		if level == AuthSoft {
			return nil
		}
		return apperrors.NewUnauthorized("User not found")
	}

	if level == AuthAdmin && !user.HasAdminAccess() {
		return apperrors.NewForbidden("")
	}

	if request.Headers == nil {
		request.Headers = map[string]string{}
	}
	request.Headers["X-User-Id"] = user.ID.Hex()
	request.Headers["X-User-Email"] = user.Email
	request.Headers["X-User-Name"] = user.Name
	return nil
}

func bearerToken(headers map[string]string) string {
	auth := headers["Authorization"]
	if auth == "" {
		auth = headers["authorization"]
	}
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func (rt *Router) notFound(method, path string) events.APIGatewayProxyResponse {
	available := make([]string, 0, len(rt.routes))
	for _, route := range rt.routes {
		available = append(available, route.Method+" "+route.Path)
	}
	return response.JSON(http.StatusNotFound, map[string]interface{}{
		"message":         "Route not found",
		"method":          method,
		"path":            path,
		"availableRoutes": available,
	})
}
