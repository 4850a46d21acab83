package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %s", err)
	}

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
