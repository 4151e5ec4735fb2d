package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plantops/roundsdb/internal/config"
	"github.com/plantops/roundsdb/internal/database"
	"github.com/plantops/roundsdb/internal/services"
	"github.com/plantops/roundsdb/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(cfg, db)

	// Probe the running server as well
	serverURL := fmt.Sprintf("http://localhost:%s", cfg.Port)
	if err := utils.PingService(serverURL, 1500*time.Millisecond); err != nil {
		result.Status = "unhealthy"
		result.Details["server_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Server ping failed: %v", err)
		}
	} else {
		result.Details["server_url"] = serverURL
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
