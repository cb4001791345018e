package main

import (
	"os"

	"blueprint-ai/backend/internal/app"
)

// @title           Blueprint AI API
// @version         1.0
// @description     Backend for turning UI screenshots into iteratively refinable development prompts.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
