// Command server runs the scanplate HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/heartmarshall/scanplate-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
