package playerdomain

import (
	"encoding/json"
	"errors"
	"testing"

	handicapdomain "github.com/Black-And-White-Club/golf-tracker/app/modules/handicap/domain"
)

func TestNewTrimsName(t *testing.T) {
	p, err := New("  Ann ", handicapdomain.IndexOf(8.2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Ann" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
}

func TestNewRejectsBlankName(t *testing.T) {
	if _, err := New("   ", handicapdomain.NoIndex()); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestPlayerJSON(t *testing.T) {
	data, err := json.Marshal([]Player{
		{Name: "Ann", HandicapIndex: handicapdomain.IndexOf(12.3)},
		{Name: "Bob"},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"name":"Ann","handicapIndex":12.3},{"name":"Bob","handicapIndex":null}]`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}

	var back []Player
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back[0].HandicapIndex.Valid || back[0].HandicapIndex.Value != 12.3 {
		t.Fatalf("index lost: %+v", back[0])
	}
	if back[1].HandicapIndex.Valid {
		t.Fatalf("null index must stay absent: %+v", back[1])
	}
}
