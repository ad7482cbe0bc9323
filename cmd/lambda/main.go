package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/techclub-services/common/db"
	"github.com/techclub-services/router"
)

var rt *router.Router

// init runs once per cold start; the router and its Mongo client are reused
// across warm invocations.
func init() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	database, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("[LAMBDA] MongoDB connection failed: %v", err)
	}
	rt = router.NewRouter(database)
}

func handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return rt.Handle(ctx, request)
}

func main() {
	lambda.Start(handle)
}
