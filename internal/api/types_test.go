package api

import (
	"encoding/json"
	"testing"

	"github.com/transit-catalog/subway/internal/subway"
)

func TestFlexibleInt(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    FlexibleInt
		wantErr bool
	}{
		{"number", `10`, 10, false},
		{"string", `"10"`, 10, false},
		{"negative string", `"-3"`, -3, false},
		{"null", `null`, 0, false},
		{"word", `"ten"`, 0, true},
		{"float", `1.5`, 0, true},
		{"bool", `true`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexibleInt
			err := json.Unmarshal([]byte(tt.json), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineRequestAcceptsStringFields(t *testing.T) {
	body := `{"name":"3호선","color":"주황색","upStationId":"1","downStationId":"2","distance":"10"}`

	var req LineRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := subway.NewLine{Name: "3호선", Color: "주황색", UpStationID: 1, DownStationID: 2, Distance: 10}
	if got := req.ToNewLine(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLineUpdateRequestDistanceIsOptional(t *testing.T) {
	var req LineUpdateRequest
	if err := json.Unmarshal([]byte(`{"name":"2호선","color":"주황색"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.ToLineUpdate().Distance != nil {
		t.Error("expected distance to be left unset")
	}

	if err := json.Unmarshal([]byte(`{"name":"2호선","color":"주황색","distance":4}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d := req.ToLineUpdate().Distance; d == nil || *d != 4 {
		t.Errorf("expected distance 4, got %v", d)
	}
}

func TestLinesToResponseEmpty(t *testing.T) {
	data, err := json.Marshal(LinesToResponse(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %s", data)
	}
}
