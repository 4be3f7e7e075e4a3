package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/webdevwork7/linkedin-zen-post/cmd"
	"github.com/webdevwork7/linkedin-zen-post/internal/logutil"
)

func main() {
	// A local .env is optional; the config file and environment still apply.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		logutil.Errorf("%v", err)
		os.Exit(1)
	}
}
