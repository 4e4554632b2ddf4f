package relational

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "donation-inventory/internal/domain/donation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the donations table.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every new connection to :memory: is a fresh, empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&domain.Donation{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

var testNow = time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)

func makeDonation(name string, typ domain.Type, qty int64) *domain.Donation {
	return &domain.Donation{
		DonorName:        name,
		DonationType:     typ,
		QuantityOrAmount: qty,
		Date:             time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	d := makeDonation("Alice", domain.TypeFood, 3)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID != 1 {
		t.Fatalf("first id = %d, want 1", d.ID)
	}

	got, err := repo.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.DonorName != "Alice" || got.DonationType != domain.TypeFood || got.QuantityOrAmount != 3 {
		t.Errorf("unexpected donation: %+v", got)
	}
	if domain.FormatDate(got.Date) != "2024-01-15" {
		t.Errorf("date not preserved: %v", got.Date)
	}
	if !got.CreatedAt.Equal(testNow) || !got.UpdatedAt.Equal(testNow) {
		t.Errorf("timestamps not preserved: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestList_OrderedByIDDesc(t *testing.T) {
	db := openTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no rows, got %d", len(empty))
	}

	for _, name := range []string{"A", "B", "C"} {
		if err := repo.Create(ctx, makeDonation(name, domain.TypeOther, 1)); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	// duplicates are allowed
	if err := repo.Create(ctx, makeDonation("C", domain.TypeOther, 1)); err != nil {
		t.Fatalf("Create duplicate: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("List len = %d, want 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID <= got[i].ID {
			t.Fatalf("not id desc at %d: %d then %d", i, got[i-1].ID, got[i].ID)
		}
	}
	if got[len(got)-1].DonorName != "A" {
		t.Fatalf("oldest should be last, got %q", got[len(got)-1].DonorName)
	}
}

func TestUpdate_WritesFieldsKeepsCreatedAt(t *testing.T) {
	db := openTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	d := makeDonation("Alice", domain.TypeFood, 3)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	later := testNow.Add(time.Hour)
	d.QuantityOrAmount = 5
	d.UpdatedAt = later
	d.CreatedAt = later // must be ignored
	if err := repo.Update(ctx, d); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.QuantityOrAmount != 5 || got.DonorName != "Alice" {
		t.Errorf("unexpected row after update: %+v", got)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("updated_at = %v, want %v", got.UpdatedAt, later)
	}
	if !got.CreatedAt.Equal(testNow) {
		t.Errorf("created_at changed: %v", got.CreatedAt)
	}
}

func TestUpdateDelete_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	ghost := makeDonation("Ghost", domain.TypeMoney, 1)
	ghost.ID = 42
	if err := repo.Update(ctx, ghost); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update missing: want ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete missing: want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID missing: want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByIDForUpdate(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByIDForUpdate missing: want ErrNotFound, got %v", err)
	}
}

func TestDelete_HardDeleteAndIDsNotReused(t *testing.T) {
	db := openTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	first := makeDonation("A", domain.TypeFood, 1)
	second := makeDonation("B", domain.TypeFood, 1)
	for _, d := range []*domain.Donation{first, second} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := repo.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// repeated delete is NotFound every time
	for i := 0; i < 2; i++ {
		if err := repo.Delete(ctx, second.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Delete again #%d: want ErrNotFound, got %v", i, err)
		}
	}

	var count int64
	if err := db.Table("donations").Where("id = ?", second.ID).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("row still present after delete")
	}

	third := makeDonation("C", domain.TypeFood, 1)
	if err := repo.Create(ctx, third); err != nil {
		t.Fatalf("Create third: %v", err)
	}
	if third.ID <= second.ID {
		t.Fatalf("id reused: third=%d second=%d", third.ID, second.ID)
	}
}

func TestCreate_CheckConstraintsAreStoreErrors(t *testing.T) {
	db := openTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	for _, d := range []*domain.Donation{
		makeDonation("Zero", domain.TypeFood, 0),
		makeDonation("Odd", domain.Type("clothes"), 1),
	} {
		err := repo.Create(ctx, d)
		var se *domain.StoreError
		if !errors.As(err, &se) {
			t.Fatalf("want *StoreError for %+v, got %v", d, err)
		}
		if se.Op != "create" {
			t.Fatalf("op = %q, want create", se.Op)
		}
	}
}
