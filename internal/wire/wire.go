// Package wire provides dependency injection for the rota application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/rota/internal/adapters/sqlite"
	"github.com/example/rota/internal/app"
	"github.com/example/rota/internal/db"
	"github.com/example/rota/internal/ports/primary"
)

var (
	operationService    primary.OperationService
	shiftService        primary.ShiftService
	segmentationService primary.SegmentationService
	once                sync.Once
)

// OperationService returns the singleton OperationService instance.
func OperationService() primary.OperationService {
	once.Do(initServices)
	return operationService
}

// ShiftService returns the singleton ShiftService instance.
func ShiftService() primary.ShiftService {
	once.Do(initServices)
	return shiftService
}

// SegmentationService returns the singleton SegmentationService instance.
func SegmentationService() primary.SegmentationService {
	once.Do(initServices)
	return segmentationService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports)
	operationRepo := sqlite.NewOperationRepository(database)
	shiftRepo := sqlite.NewShiftRepository(database)

	// Create services (primary ports implementation)
	operationService = app.NewOperationService(operationRepo)
	shiftService = app.NewShiftService(shiftRepo)
	segmentationService = app.NewSegmentationService(shiftRepo, operationRepo)
}
