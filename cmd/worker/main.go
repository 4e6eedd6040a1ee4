// Command worker runs wardrobe jobs outside the API server: offline outfit generation from a
// YAML wardrobe file and the saved-outfit audit.
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("worker: %v", err)
	}
}
