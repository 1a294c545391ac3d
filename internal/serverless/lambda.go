package serverless

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// GatewayHandler is the signature lambda.Start expects for API Gateway HTTP APIs.
type GatewayHandler = func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// NewGatewayHandler adapts an http.Handler to API Gateway HTTP API events.
func NewGatewayHandler(h http.Handler) GatewayHandler {
	return httpadapter.NewV2(h).ProxyWithContext
}
