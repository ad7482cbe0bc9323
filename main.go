package main

import (
	"context"
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/joho/godotenv"

	"github.com/techclub-services/common/db"
	"github.com/techclub-services/common/scheduler"
	"github.com/techclub-services/router"
	eventrepo "github.com/techclub-services/services/event/repository"
)

// adaptRequest converts http.Request to APIGatewayProxyRequest
func adaptRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}
	defer r.Body.Close()

	headers := make(map[string]string)
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	queryParams := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			queryParams[key] = values[0]
		}
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		QueryStringParameters: queryParams,
		Body:                  string(body),
	}, nil
}

// writeResponse writes APIGatewayProxyResponse to http.ResponseWriter
func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)

	if resp.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			log.Printf("[SERVER] failed to decode binary response body: %v", err)
			return
		}
		w.Write(decoded)
		return
	}
	w.Write([]byte(resp.Body))
}

func main() {
	// .env is optional; real deployments configure via the environment.
	if err := godotenv.Load(); err == nil {
		log.Println("[SERVER] Loaded configuration from .env")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	database, err := db.Connect(ctx)
	cancel()
	if err != nil {
		log.Fatalf("[SERVER] MongoDB connection failed: %v", err)
	}

	rt := router.NewRouter(database)

	// The status sweep only exists on the local server; the serverless
	// entrypoint has no long-lived process to host it.
	statusScheduler := scheduler.NewEventStatusScheduler(eventrepo.NewEventRepository(database), 30)
	statusScheduler.Start()
	defer statusScheduler.Stop()

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		request, err := adaptRequest(r)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}

		resp, err := rt.Handle(r.Context(), request)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		writeResponse(w, resp)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	server := &http.Server{Addr: ":" + port}

	go func() {
		log.Printf("[SERVER] Listening on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[SERVER] %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[SERVER] Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[SERVER] Shutdown error: %v", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Printf("[SERVER] MongoDB disconnect error: %v", err)
	}
}
