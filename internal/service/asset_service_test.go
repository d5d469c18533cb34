package service_test

import (
	"context"
	"testing"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/testutil"
)

func TestAssetService_AddAsset(t *testing.T) {
	t.Run("stores uppercase ticker", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		svc := testutil.NewTestAssetService(t, store)

		asset, ok, err := svc.AddAsset(context.Background(), "sol", model.AssetTypeCrypto)
		if err != nil {
			t.Fatalf("AddAsset failed: %v", err)
		}
		if !ok {
			t.Fatal("Expected ok for new ticker")
		}
		if asset.Ticker != "SOL" {
			t.Errorf("Expected SOL, got %s", asset.Ticker)
		}
	})

	t.Run("duplicate ticker returns false without error", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		svc := testutil.NewTestAssetService(t, store)
		ctx := context.Background()

		if _, ok, err := svc.AddAsset(ctx, "BTC", model.AssetTypeCrypto); err != nil || !ok {
			t.Fatalf("First insert should succeed, ok=%v err=%v", ok, err)
		}

		asset, ok, err := svc.AddAsset(ctx, "btc", model.AssetTypeCrypto)
		if err != nil {
			t.Fatalf("Duplicate insert must not error, got: %v", err)
		}
		if ok || asset != nil {
			t.Errorf("Expected ok=false and nil asset for duplicate, got ok=%v asset=%+v", ok, asset)
		}

		assets, err := svc.ListAssets(ctx, "")
		if err != nil {
			t.Fatalf("ListAssets failed: %v", err)
		}
		if len(assets) != 1 {
			t.Errorf("Duplicate must not create a second row, got %d", len(assets))
		}
	})
}

func TestAssetService_EnsureDefaults(t *testing.T) {
	t.Run("seeds defaults into an empty store", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		svc := testutil.NewTestAssetService(t, store)
		ctx := context.Background()

		if err := svc.EnsureDefaults(ctx); err != nil {
			t.Fatalf("EnsureDefaults failed: %v", err)
		}

		assets, err := svc.ListAssets(ctx, model.AssetTypeCrypto)
		if err != nil {
			t.Fatalf("ListAssets failed: %v", err)
		}
		if len(assets) != 3 {
			t.Fatalf("Expected 3 seeded assets, got %d", len(assets))
		}
		wantOrder := []string{"BNB", "BTC", "ETH"}
		for i, want := range wantOrder {
			if assets[i].Ticker != want {
				t.Errorf("Position %d: expected %s, got %s", i, want, assets[i].Ticker)
			}
		}
	})

	t.Run("does not reseed a populated store", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		svc := testutil.NewTestAssetService(t, store)
		ctx := context.Background()

		testutil.NewAsset().WithTicker("AAPL").WithAssetType(model.AssetTypeStock).Build(t, store)

		if err := svc.EnsureDefaults(ctx); err != nil {
			t.Fatalf("EnsureDefaults failed: %v", err)
		}

		assets, err := svc.ListAssets(ctx, "")
		if err != nil {
			t.Fatalf("ListAssets failed: %v", err)
		}
		if len(assets) != 1 {
			t.Errorf("Expected seeding to be skipped, got %d assets", len(assets))
		}
	})
}
