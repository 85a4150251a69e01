package subway_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/transit-catalog/subway/internal/store/memstore"
	"github.com/transit-catalog/subway/internal/subway"
)

type fixture struct {
	store    *memstore.Store
	lines    *subway.LineService
	stations *subway.StationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	return &fixture{
		store:    store,
		lines:    subway.NewLineService(store, store),
		stations: subway.NewStationService(store),
	}
}

func (f *fixture) station(t *testing.T, name string) subway.Station {
	t.Helper()
	station, err := f.stations.Create(context.Background(), name)
	if err != nil {
		t.Fatalf("failed to create station %q: %v", name, err)
	}
	return station
}

func (f *fixture) line(t *testing.T, name, color string, up, down subway.Station, distance int) subway.LineView {
	t.Helper()
	line, err := f.lines.Create(context.Background(), subway.NewLine{
		Name:          name,
		Color:         color,
		UpStationID:   up.ID,
		DownStationID: down.ID,
		Distance:      distance,
	})
	if err != nil {
		t.Fatalf("failed to create line %q: %v", name, err)
	}
	return line
}

func lineNames(views []subway.LineView) []string {
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	return names
}

func stationNames(view subway.LineView) []string {
	names := make([]string, 0, len(view.Stations))
	for _, s := range view.Stations {
		names = append(names, s.Name)
	}
	return names
}

func TestLineService_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")

	created := f.line(t, "3호선", "주황색", up, down, 10)

	if created.ID == 0 {
		t.Error("expected an id to be assigned")
	}
	if got := stationNames(created); !slices.Equal(got, []string{"연신내역", "불광역"}) {
		t.Errorf("expected stations ordered up then down, got %v", got)
	}

	views, err := f.lines.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !slices.Contains(lineNames(views), "3호선") {
		t.Errorf("expected created line in list, got %v", lineNames(views))
	}
}

func TestLineService_CreateRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")
	f.line(t, "3호선", "주황색", up, down, 10)

	tests := []struct {
		name     string
		req      subway.NewLine
		wantKind subway.ErrorKind
	}{
		{"same station", subway.NewLine{Name: "x", Color: "c", UpStationID: up.ID, DownStationID: up.ID, Distance: 1}, subway.KindInvalidArgument},
		{"zero distance", subway.NewLine{Name: "x", Color: "c", UpStationID: up.ID, DownStationID: down.ID}, subway.KindInvalidArgument},
		{"empty name", subway.NewLine{Color: "c", UpStationID: up.ID, DownStationID: down.ID, Distance: 1}, subway.KindInvalidArgument},
		{"empty color", subway.NewLine{Name: "x", UpStationID: up.ID, DownStationID: down.ID, Distance: 1}, subway.KindInvalidArgument},
		{"unknown up station", subway.NewLine{Name: "x", Color: "c", UpStationID: 999, DownStationID: down.ID, Distance: 1}, subway.KindNotFound},
		{"unknown down station", subway.NewLine{Name: "x", Color: "c", UpStationID: up.ID, DownStationID: 999, Distance: 1}, subway.KindNotFound},
		{"duplicate name", subway.NewLine{Name: "3호선", Color: "c", UpStationID: up.ID, DownStationID: down.ID, Distance: 1}, subway.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.lines.Create(ctx, tt.req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := subway.KindOf(err); got != tt.wantKind {
				t.Errorf("expected kind %v, got %v (%v)", tt.wantKind, got, err)
			}
		})
	}

	views, err := f.lines.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Errorf("expected rejected creates to leave 1 line, got %d", len(views))
	}
}

func TestLineService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	empty, err := f.lines.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", empty)
	}

	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")
	f.line(t, "3호선", "주황색", up, down, 10)
	f.line(t, "분당선", "노랑색", up, down, 10)

	first, err := f.lines.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got := lineNames(first); !slices.Equal(got, []string{"3호선", "분당선"}) {
		t.Errorf("expected lines in creation order, got %v", got)
	}

	second, err := f.lines.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !slices.EqualFunc(first, second, func(a, b subway.LineView) bool {
		return a.Line == b.Line && slices.Equal(a.Stations, b.Stations)
	}) {
		t.Errorf("expected repeated list to be identical:\n%v\n%v", first, second)
	}
}

func TestLineService_Get(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")
	created := f.line(t, "3호선", "주황색", up, down, 10)

	got, err := f.lines.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "3호선" {
		t.Errorf("expected name 3호선, got %q", got.Name)
	}
	names := stationNames(got)
	if !slices.Contains(names, "연신내역") || !slices.Contains(names, "불광역") {
		t.Errorf("expected both stations, got %v", names)
	}

	_, err = f.lines.Get(ctx, created.ID+100)
	if subway.KindOf(err) != subway.KindNotFound {
		t.Errorf("expected not found for unknown id, got %v", err)
	}
}

func TestLineService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")
	created := f.line(t, "3호선", "주황색", up, down, 10)
	other := f.line(t, "분당선", "노랑색", up, down, 4)

	updated, err := f.lines.Update(ctx, created.ID, subway.LineUpdate{Name: "2호선", Color: "주황색"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "2호선" {
		t.Errorf("expected updated name in response, got %q", updated.Name)
	}

	got, err := f.lines.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "2호선" || got.Color != "주황색" {
		t.Errorf("expected name/color to change, got %q %q", got.Name, got.Color)
	}
	if got.Distance != 10 {
		t.Errorf("expected distance to stay 10, got %d", got.Distance)
	}
	if !slices.Equal(got.Stations, created.Stations) {
		t.Errorf("expected stations unchanged, got %v", got.Stations)
	}

	if _, err := f.lines.Update(ctx, 999, subway.LineUpdate{Name: "a", Color: "b"}); subway.KindOf(err) != subway.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := f.lines.Update(ctx, created.ID, subway.LineUpdate{Name: "", Color: "b"}); subway.KindOf(err) != subway.KindInvalidArgument {
		t.Errorf("expected invalid argument, got %v", err)
	}
	if _, err := f.lines.Update(ctx, created.ID, subway.LineUpdate{Name: other.Name, Color: "b"}); subway.KindOf(err) != subway.KindConflict {
		t.Errorf("expected conflict on duplicate name, got %v", err)
	}

	// renaming a line to its own name is not a conflict
	if _, err := f.lines.Update(ctx, created.ID, subway.LineUpdate{Name: "2호선", Color: "빨강색"}); err != nil {
		t.Errorf("expected self rename to succeed, got %v", err)
	}
}

func TestLineService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")
	created := f.line(t, "3호선", "주황색", up, down, 10)

	if err := f.lines.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	views, err := f.lines.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("expected no lines after delete, got %v", lineNames(views))
	}

	if _, err := f.lines.Get(ctx, created.ID); subway.KindOf(err) != subway.KindNotFound {
		t.Errorf("expected not found after delete, got %v", err)
	}

	err = f.lines.Delete(ctx, created.ID)
	if subway.KindOf(err) != subway.KindNotFound {
		t.Errorf("expected second delete to be not found, got %v", err)
	}
	if !errors.Is(err, subway.ErrLineNotFound) {
		t.Errorf("expected ErrLineNotFound in chain, got %v", err)
	}
}

func TestLineService_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")

	const workers = 20
	var wg sync.WaitGroup
	ids := make(chan int64, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			line, err := f.lines.Create(ctx, subway.NewLine{
				Name:          string(rune('A' + i)),
				Color:         "색",
				UpStationID:   up.ID,
				DownStationID: down.ID,
				Distance:      1,
			})
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			ids <- line.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers {
		t.Errorf("expected %d distinct ids, got %d", workers, len(seen))
	}
}

func TestLineService_ConcurrentDeleteAndGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	up := f.station(t, "연신내역")
	down := f.station(t, "불광역")
	created := f.line(t, "3호선", "주황색", up, down, 10)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := f.lines.Get(ctx, created.ID)
			switch {
			case err == nil:
				if view.Name != "3호선" || len(view.Stations) != 2 {
					t.Errorf("read a partial line: %+v", view)
				}
			case subway.KindOf(err) != subway.KindNotFound:
				t.Errorf("expected not found or success, got %v", err)
			}
		}()
	}
	if err := f.lines.Delete(ctx, created.ID); err != nil {
		t.Errorf("delete failed: %v", err)
	}
	wg.Wait()
}
