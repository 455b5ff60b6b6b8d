package repository

import "testing"

func TestClampLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, DefaultHistoryLimit},
		{-5, DefaultHistoryLimit},
		{1, 1},
		{MaxHistoryLimit, MaxHistoryLimit},
		{MaxHistoryLimit + 1, MaxHistoryLimit},
	}
	for _, tt := range tests {
		if got := clampLimit(tt.limit); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestNullableID(t *testing.T) {
	if id := nullableID(0); id.Valid {
		t.Error("anonymous user should be stored as NULL")
	}
	if id := nullableID(7); !id.Valid || id.Int64 != 7 {
		t.Errorf("nullableID(7) = %+v", id)
	}
}

func TestNewEventRepository(t *testing.T) {
	if repo := NewEventRepository(nil); repo == nil {
		t.Fatal("expected non-nil EventRepository")
	}
}
