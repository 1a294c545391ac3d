package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mtlprog/antiptrn/internal/serverless"
)

func main() {
	lambda.Start(serverless.NewGatewayHandler(serverless.NewMux()))
}
