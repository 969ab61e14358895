package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/cubetui/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "cubetui.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListSolves(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(0, 0).UTC()
	ao5 := 10500 * time.Millisecond
	inputs := []model.Solve{
		{Time: 12 * time.Second},
		{Time: 9 * time.Second, AO5: &ao5},
	}
	for i, solve := range inputs {
		id, err := st.InsertSolve(ctx, base.Add(time.Duration(i)*time.Minute), solve, "R U R' U'")
		if err != nil {
			t.Fatalf("insert solve: %v", err)
		}
		if id == 0 {
			t.Fatalf("expected nonzero row id")
		}
	}

	solves, err := st.ListSolves(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list solves: %v", err)
	}
	if len(solves) != 2 {
		t.Fatalf("expected 2 solves, got %d", len(solves))
	}
	if solves[0].Time != 12*time.Second {
		t.Fatalf("unexpected first time: %v", solves[0].Time)
	}
	if solves[0].AO5 != nil {
		t.Fatalf("expected nil ao5 for first solve")
	}
	if solves[1].AO5 == nil || *solves[1].AO5 != ao5 {
		t.Fatalf("ao5 not round-tripped: %v", solves[1].AO5)
	}
	if solves[1].Scramble != "R U R' U'" {
		t.Fatalf("scramble not round-tripped: %q", solves[1].Scramble)
	}
}

func TestListSolvesSinceFilter(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(0, 0).UTC()
	for i := 0; i < 3; i++ {
		if _, err := st.InsertSolve(ctx, base.Add(time.Duration(i)*time.Hour), model.Solve{Time: time.Duration(i+10) * time.Second}, ""); err != nil {
			t.Fatalf("insert solve: %v", err)
		}
	}

	since := base.Add(90 * time.Minute)
	solves, err := st.ListSolves(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list solves: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("expected 1 solve after filter, got %d", len(solves))
	}
	if solves[0].Time != 12*time.Second {
		t.Fatalf("unexpected filtered solve: %v", solves[0].Time)
	}
}
