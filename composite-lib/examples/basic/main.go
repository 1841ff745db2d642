// ABOUTME: Basic example showing how to fetch a product composite in-process
// ABOUTME: Demonstrates minimal configuration and error classification

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	composite "product-composite-api/composite-lib"
)

func main() {
	// Backends default to localhost:7001, 7002 and 7003
	client, err := composite.NewClient(
		composite.WithTimeout(5 * time.Second),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	ctx := context.Background()

	for _, id := range []int{1, 13, 113} {
		fmt.Printf("=== Product %d ===\n", id)

		pc, err := client.GetProductComposite(ctx, id)
		switch {
		case composite.IsNotFoundError(err):
			fmt.Println("not found:", err)
			continue
		case composite.IsInvalidInputError(err):
			fmt.Println("invalid id:", err)
			continue
		case err != nil:
			log.Printf("Error fetching product: %v\n", err)
			continue
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pc); err != nil {
			log.Printf("Error encoding product: %v\n", err)
		}
	}
}
