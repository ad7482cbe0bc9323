package router

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/techclub-services/common/response"
)

func echoHandler(tag string) HandlerFunc {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return response.JSON(http.StatusOK, map[string]interface{}{
			"handler": tag,
			"params":  request.PathParameters,
			"body":    request.Body,
		}), nil
	}
}

func testRouter() *Router {
	routes := []Route{
		{Method: http.MethodGet, Path: "/events/user/registrations", Auth: AuthNone, Handler: echoHandler("user-registrations")},
		{Method: http.MethodGet, Path: "/events", Auth: AuthNone, Handler: echoHandler("list")},
		{Method: http.MethodGet, Path: "/events/:idOrSlug/registrations", Auth: AuthNone, Handler: echoHandler("event-registrations")},
		{Method: http.MethodGet, Path: "/events/:idOrSlug", Auth: AuthNone, Handler: echoHandler("get")},
		{Method: http.MethodPost, Path: "/events/:idOrSlug/register", Auth: AuthNone, Handler: echoHandler("register")},
	}
	for i := range routes {
		routes[i].compile()
	}
	return &Router{routes: routes}
}

func dispatch(t *testing.T, rt *Router, method, path, body string) events.APIGatewayProxyResponse {
	t.Helper()
	resp, err := rt.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: method,
		Path:       path,
		Body:       body,
	})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp events.APIGatewayProxyResponse) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(resp.Body), &m); err != nil {
		t.Fatalf("invalid response body %q: %v", resp.Body, err)
	}
	return m
}

func TestLiteralRouteBeatsWildcard(t *testing.T) {
	resp := dispatch(t, testRouter(), http.MethodGet, "/events/user/registrations", "")
	body := decodeBody(t, resp)
	if body["handler"] != "user-registrations" {
		t.Errorf("handler = %v, want user-registrations", body["handler"])
	}
}

func TestWildcardMatchExtractsParams(t *testing.T) {
	resp := dispatch(t, testRouter(), http.MethodGet, "/events/code-coffee", "")
	body := decodeBody(t, resp)
	if body["handler"] != "get" {
		t.Fatalf("handler = %v, want get", body["handler"])
	}
	params := body["params"].(map[string]interface{})
	if params["idOrSlug"] != "code-coffee" {
		t.Errorf("idOrSlug = %v, want code-coffee", params["idOrSlug"])
	}
}

func TestNestedWildcardRoute(t *testing.T) {
	resp := dispatch(t, testRouter(), http.MethodGet, "/events/abc123/registrations", "")
	body := decodeBody(t, resp)
	if body["handler"] != "event-registrations" {
		t.Errorf("handler = %v, want event-registrations", body["handler"])
	}
}

func TestAPIPrefixStripped(t *testing.T) {
	resp := dispatch(t, testRouter(), http.MethodGet, "/api/events", "")
	body := decodeBody(t, resp)
	if body["handler"] != "list" {
		t.Errorf("handler = %v, want list", body["handler"])
	}
}

func TestTrailingSlashTolerated(t *testing.T) {
	resp := dispatch(t, testRouter(), http.MethodGet, "/events/", "")
	body := decodeBody(t, resp)
	if body["handler"] != "list" {
		t.Errorf("handler = %v, want list", body["handler"])
	}
}

func TestOptionsShortCircuits(t *testing.T) {
	resp := dispatch(t, testRouter(), http.MethodOptions, "/events", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] == "" {
		t.Error("missing CORS headers on preflight response")
	}
}

func TestUnknownRouteReturns404WithRouteList(t *testing.T) {
	resp := dispatch(t, testRouter(), http.MethodGet, "/nope", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["path"] != "/nope" {
		t.Errorf("path echo = %v, want /nope", body["path"])
	}
	routes, ok := body["availableRoutes"].([]interface{})
	if !ok || len(routes) == 0 {
		t.Error("expected non-empty availableRoutes list")
	}
}

func TestMethodMismatchIs404(t *testing.T) {
	resp := dispatch(t, testRouter(), http.MethodDelete, "/events", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestTolerantBodyParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"malformed json", "{not json", "{}"},
		{"empty body", "", "{}"},
		{"valid json kept", `{"name":"x"}`, `{"name":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := dispatch(t, testRouter(), http.MethodPost, "/events/hack/register", tt.in)
			body := decodeBody(t, resp)
			if body["body"] != tt.want {
				t.Errorf("handler body = %q, want %q", body["body"], tt.want)
			}
		})
	}
}

func TestPanicRecoveredAs500(t *testing.T) {
	routes := []Route{
		{Method: http.MethodGet, Path: "/boom", Auth: AuthNone, Handler: func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			panic("kaboom")
		}},
	}
	routes[0].compile()
	rt := &Router{routes: routes}

	resp := dispatch(t, rt, http.MethodGet, "/boom", "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if strings.Contains(resp.Body, "kaboom") {
		t.Error("panic detail leaked into production response")
	}
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	for _, path := range []string{"/events", "/nope"} {
		resp := dispatch(t, testRouter(), http.MethodGet, path, "")
		if resp.Headers["Access-Control-Allow-Origin"] != "*" {
			t.Errorf("missing CORS header on %s response", path)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/events", "/events"},
		{"/events", "/events"},
		{"events", "/events"},
		{"/api", "/"},
		{"/events///", "/events"},
	}
	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
