package subway_test

import (
	"context"
	"testing"

	"github.com/transit-catalog/subway/internal/subway"
)

func TestStationService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")

	t.Run("duplicate name", func(t *testing.T) {
		_, err := f.stations.Create(ctx, "연신내역")
		if subway.KindOf(err) != subway.KindConflict {
			t.Errorf("expected conflict, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := f.stations.Create(ctx, "  ")
		if subway.KindOf(err) != subway.KindInvalidArgument {
			t.Errorf("expected invalid argument, got %v", err)
		}
	})

	t.Run("list in creation order", func(t *testing.T) {
		stations, err := f.stations.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(stations) != 2 || stations[0] != up || stations[1] != down {
			t.Errorf("unexpected stations %v", stations)
		}
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := f.stations.Get(ctx, 404)
		if subway.KindOf(err) != subway.KindNotFound {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("delete in use", func(t *testing.T) {
		line := f.line(t, "3호선", "주황색", up, down, 10)

		err := f.stations.Delete(ctx, up.ID)
		if subway.KindOf(err) != subway.KindConflict {
			t.Errorf("expected conflict while referenced, got %v", err)
		}

		if err := f.lines.Delete(ctx, line.ID); err != nil {
			t.Fatalf("delete line failed: %v", err)
		}
		if err := f.stations.Delete(ctx, up.ID); err != nil {
			t.Errorf("expected delete to succeed once unreferenced, got %v", err)
		}
		if err := f.stations.Delete(ctx, up.ID); subway.KindOf(err) != subway.KindNotFound {
			t.Errorf("expected not found on second delete, got %v", err)
		}
	})
}
