package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/OverlordBaconPants/rei-analyzer/internal/engine"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/loans"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/money"
)

func rentalAnalysis() *engine.Analysis {
	return &engine.Analysis{
		Name:          "123 Main St",
		Strategy:      engine.StrategyLTR,
		PurchasePrice: money.FromFloat(200000),
		DownPayment:   money.FromFloat(40000),
		ClosingCosts:  money.FromFloat(5000),
		MonthlyRent:   money.FromFloat(2000),
		Expenses: engine.Expenses{
			PropertyTaxes: money.FromFloat(200),
			Insurance:     money.FromFloat(100),
		},
		InitialLoan: &loans.Details{
			Principal:  money.FromFloat(160000),
			AnnualRate: money.PercentFromFloat(6),
			TermMonths: 360,
		},
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Error("empty store returned a value")
	}
	if err := store.Set(ctx, "key", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok := store.Get(ctx, "key")
	if !ok || value != "value" {
		t.Errorf("Get = (%q, %v), expected (value, true)", value, ok)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, expected 1", store.Len())
	}
}

func TestCachedCalculator(t *testing.T) {
	store := NewMemoryStore()
	cached := NewCachedCalculator(engine.NewCalculator(nil), store, nil)
	ctx := context.Background()
	analysis := rentalAnalysis()

	first, err := cached.Compute(ctx, analysis)
	if err != nil {
		t.Fatalf("first Compute failed: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("cache holds %d entries after a miss, expected 1", store.Len())
	}

	second, err := cached.Compute(ctx, analysis)
	if err != nil {
		t.Fatalf("second Compute failed: %v", err)
	}

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("cached result differs from computed:\n%s\n%s", firstJSON, secondJSON)
	}
	if store.Len() != 1 {
		t.Errorf("cache holds %d entries after a hit, expected 1", store.Len())
	}
}

func TestCachedCalculatorDistinguishesInputs(t *testing.T) {
	store := NewMemoryStore()
	cached := NewCachedCalculator(engine.NewCalculator(nil), store, nil)
	ctx := context.Background()

	if _, err := cached.Compute(ctx, rentalAnalysis()); err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	changed := rentalAnalysis()
	changed.MonthlyRent = money.FromFloat(2100)
	if _, err := cached.Compute(ctx, changed); err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("cache holds %d entries for two distinct analyses, expected 2", store.Len())
	}
}

// failingStore always errors on write and misses on read.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool) { return "", false }
func (failingStore) Set(context.Context, string, string) error  { return errors.New("store down") }

func TestCachedCalculatorDegradesOnStoreFailure(t *testing.T) {
	cached := NewCachedCalculator(engine.NewCalculator(nil), failingStore{}, nil)
	result, err := cached.Compute(context.Background(), rentalAnalysis())
	if err != nil {
		t.Fatalf("Compute failed despite a broken store: %v", err)
	}
	if result == nil {
		t.Fatal("expected a computed result")
	}
}

func TestCachedCalculatorDiscardsCorruptEntries(t *testing.T) {
	store := NewMemoryStore()
	cached := NewCachedCalculator(engine.NewCalculator(nil), store, nil)
	ctx := context.Background()
	analysis := rentalAnalysis()

	key, err := analysis.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if err := store.Set(ctx, key, "{not json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, err := cached.Compute(ctx, analysis)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected a recomputed result after a corrupt cache entry")
	}
}

func TestCachedCalculatorPropagatesValidationErrors(t *testing.T) {
	analysis := rentalAnalysis()
	analysis.MonthlyRent = money.Zero()

	cached := NewCachedCalculator(engine.NewCalculator(nil), NewMemoryStore(), nil)
	if _, err := cached.Compute(context.Background(), analysis); err == nil {
		t.Fatal("expected the underlying validation error")
	}
}
