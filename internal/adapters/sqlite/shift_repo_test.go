package sqlite_test

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/rota/internal/adapters/sqlite"
	"github.com/example/rota/internal/ports/secondary"
)

// createTestShift is a helper that creates a plain shift with a generated ID.
func createTestShift(t *testing.T, repo *sqlite.ShiftRepository, ctx context.Context, employee, day string) *secondary.ShiftRecord {
	t.Helper()

	nextID, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}

	shift := &secondary.ShiftRecord{
		ID:        nextID,
		Employee:  employee,
		Day:       day,
		StartTime: "08:00",
		EndTime:   "17:00",
	}

	if err := repo.Create(ctx, shift); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	return shift
}

func TestShiftRepository_CreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewShiftRepository(database)
	ctx := context.Background()

	shift := createTestShift(t, repo, ctx, "Alice Martin", "2026-03-02")

	retrieved, err := repo.GetByID(ctx, shift.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Employee != "Alice Martin" {
		t.Errorf("expected employee 'Alice Martin', got '%s'", retrieved.Employee)
	}
	if retrieved.StartTime != "08:00" || retrieved.EndTime != "17:00" {
		t.Errorf("expected boundary 08:00-17:00, got %s-%s", retrieved.StartTime, retrieved.EndTime)
	}
	if retrieved.Segmentation.Enabled {
		t.Error("expected segmentation disabled by default")
	}
	if len(retrieved.Segmentation.Segments) != 0 {
		t.Errorf("expected no segments, got %d", len(retrieved.Segmentation.Segments))
	}
}

func TestShiftRepository_GetByID_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewShiftRepository(database)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "SHIFT-999")
	if err == nil {
		t.Error("expected error for non-existent shift")
	}
}

func TestShiftRepository_UpdateSegmentation(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewShiftRepository(database)
	ctx := context.Background()

	shift := createTestShift(t, repo, ctx, "Alice Martin", "2026-03-02")

	seg := secondary.SegmentationRecord{
		Enabled: true,
		Segments: []secondary.SegmentRecord{
			{ID: "seg-1", StartTime: "08:00", EndTime: "12:00", OperationID: "OP-001"},
			{ID: "seg-2", StartTime: "12:00", EndTime: "17:00", OperationID: "OP-002"},
		},
	}
	if err := repo.UpdateSegmentation(ctx, shift.ID, seg); err != nil {
		t.Fatalf("UpdateSegmentation failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, shift.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !retrieved.Segmentation.Enabled {
		t.Error("expected segmentation enabled")
	}
	if len(retrieved.Segmentation.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(retrieved.Segmentation.Segments))
	}
	// Insertion order survives the round trip.
	if retrieved.Segmentation.Segments[0].ID != "seg-1" {
		t.Errorf("expected first segment 'seg-1', got '%s'", retrieved.Segmentation.Segments[0].ID)
	}
	if retrieved.Segmentation.Segments[1].OperationID != "OP-002" {
		t.Errorf("expected second segment operation 'OP-002', got '%s'", retrieved.Segmentation.Segments[1].OperationID)
	}
}

func TestShiftRepository_UpdateSegmentation_Replaces(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewShiftRepository(database)
	ctx := context.Background()

	shift := createTestShift(t, repo, ctx, "Bob Chen", "2026-03-03")

	first := secondary.SegmentationRecord{
		Enabled: true,
		Segments: []secondary.SegmentRecord{
			{ID: "seg-1", StartTime: "08:00", EndTime: "17:00", OperationID: "OP-001"},
		},
	}
	if err := repo.UpdateSegmentation(ctx, shift.ID, first); err != nil {
		t.Fatalf("UpdateSegmentation failed: %v", err)
	}

	// Disabling clears the stored segments entirely.
	if err := repo.UpdateSegmentation(ctx, shift.ID, secondary.SegmentationRecord{}); err != nil {
		t.Fatalf("UpdateSegmentation failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, shift.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Segmentation.Enabled {
		t.Error("expected segmentation disabled")
	}
	if len(retrieved.Segmentation.Segments) != 0 {
		t.Errorf("expected 0 segments, got %d", len(retrieved.Segmentation.Segments))
	}
}

func TestShiftRepository_UpdateSegmentation_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewShiftRepository(database)
	ctx := context.Background()

	err := repo.UpdateSegmentation(ctx, "SHIFT-999", secondary.SegmentationRecord{})
	if err == nil {
		t.Error("expected error for non-existent shift")
	}
}

func TestShiftRepository_Delete_CascadesSegments(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewShiftRepository(database)
	ctx := context.Background()

	shift := createTestShift(t, repo, ctx, "Alice Martin", "2026-03-02")
	seg := secondary.SegmentationRecord{
		Enabled: true,
		Segments: []secondary.SegmentRecord{
			{ID: "seg-1", StartTime: "08:00", EndTime: "17:00", OperationID: "OP-001"},
		},
	}
	if err := repo.UpdateSegmentation(ctx, shift.ID, seg); err != nil {
		t.Fatalf("UpdateSegmentation failed: %v", err)
	}

	if err := repo.Delete(ctx, shift.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM segments WHERE shift_id = ?", shift.ID).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected segments to cascade on delete, found %d", count)
	}
}

func TestShiftRepository_List_Filters(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewShiftRepository(database)
	ctx := context.Background()

	createTestShift(t, repo, ctx, "Alice Martin", "2026-03-02")
	createTestShift(t, repo, ctx, "Bob Chen", "2026-03-02")
	createTestShift(t, repo, ctx, "Alice Martin", "2026-03-03")

	shifts, err := repo.List(ctx, secondary.ShiftFilters{Employee: "Alice Martin"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
	// Newest day first.
	if shifts[0].Day != "2026-03-03" {
		t.Errorf("expected newest day first, got '%s'", shifts[0].Day)
	}

	shifts, err = repo.List(ctx, secondary.ShiftFilters{Day: "2026-03-02"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(shifts) != 2 {
		t.Errorf("expected 2 shifts on 2026-03-02, got %d", len(shifts))
	}

	shifts, err = repo.List(ctx, secondary.ShiftFilters{Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(shifts) != 1 {
		t.Errorf("expected limit of 1 shift, got %d", len(shifts))
	}
}

func TestShiftRepository_GetNextID(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewShiftRepository(database)
	ctx := context.Background()

	id, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if id != "SHIFT-001" {
		t.Errorf("expected SHIFT-001, got %s", id)
	}

	createTestShift(t, repo, ctx, "Alice Martin", "2026-03-02")

	id, err = repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if id != "SHIFT-002" {
		t.Errorf("expected SHIFT-002, got %s", id)
	}
}
