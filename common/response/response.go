package response

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/techclub-services/common/errors"
)

// CORSHeaders are attached to every response, including errors.
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
}

func headers() map[string]string {
	h := map[string]string{"Content-Type": "application/json"}
	for k, v := range CORSHeaders {
		h[k] = v
	}
	return h
}

// JSON creates a response serializing data directly (no envelope).
func JSON(statusCode int, data interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers(),
			Body:       `{"message":"Failed to serialize response"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers(),
		Body:       string(body),
	}
}

// Message creates a {"message": ...} response.
func Message(statusCode int, message string) events.APIGatewayProxyResponse {
	return JSON(statusCode, map[string]string{"message": message})
}

// OK creates a 200 OPTIONS/preflight response with no body.
func OK() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Headers: headers()}
}

// Binary creates a base64-encoded binary response (PDF export).
func Binary(statusCode int, contentType, filename, body string) events.APIGatewayProxyResponse {
	h := map[string]string{
		"Content-Type":        contentType,
		"Content-Disposition": `attachment; filename="` + filename + `"`,
	}
	for k, v := range CORSHeaders {
		h[k] = v
	}
	return events.APIGatewayProxyResponse{
		StatusCode:      statusCode,
		Headers:         h,
		Body:            body,
		IsBase64Encoded: true,
	}
}

// Error renders an AppError. In development mode the cause is included to
// ease debugging; in production the body stays generic.
func Error(appErr *apperrors.AppError) events.APIGatewayProxyResponse {
	body := map[string]interface{}{"message": appErr.Message}
	if appErr.Code != "" {
		body["error"] = appErr.Code
	}
	for k, v := range appErr.Fields {
		body[k] = v
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		body["success"] = false
		if os.Getenv("APP_ENV") == "development" && appErr.Cause != nil {
			body["details"] = appErr.Cause.Error()
		}
	}
	return JSON(appErr.HTTPStatus, body)
}
