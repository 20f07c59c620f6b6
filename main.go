package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/s0up4200/ytsearch/cmd"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env file: %v\n", err)
	}

	cmd.SetVersion(version, buildTime)
	cmd.Execute()
}
