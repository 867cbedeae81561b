package main

import (
	"github.com/sh5080/emotion-tips-go/pkg/serverless"
)

func main() {
	serverless.LambdaMain()
}
