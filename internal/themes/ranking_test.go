package themes

import "testing"

func TestTopByUsage(t *testing.T) {
	themes := []Theme{
		{ID: "a", Name: "A", UsageCount: 5},
		{ID: "b", Name: "B", UsageCount: 9},
		{ID: "c", Name: "C", UsageCount: 9},
		{ID: "d", Name: "D", UsageCount: 1},
	}

	t.Run("ties keep original order", func(t *testing.T) {
		top := TopByUsage(themes, 3)
		wantIDs := []string{"b", "c", "a"}

		if len(top) != 3 {
			t.Fatalf("got %d themes, want 3", len(top))
		}
		for i, want := range wantIDs {
			if top[i].ID != want {
				t.Errorf("rank %d = %s, want %s", i, top[i].ID, want)
			}
		}
	})

	t.Run("n larger than list", func(t *testing.T) {
		top := TopByUsage(themes, 10)
		if len(top) != 4 {
			t.Errorf("got %d themes, want 4", len(top))
		}
	})

	t.Run("n zero", func(t *testing.T) {
		if top := TopByUsage(themes, 0); top != nil {
			t.Errorf("got %v, want nil", top)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if top := TopByUsage(nil, 3); len(top) != 0 {
			t.Errorf("got %v, want empty", top)
		}
	})

	t.Run("input not modified", func(t *testing.T) {
		TopByUsage(themes, 4)
		if themes[0].ID != "a" || themes[3].ID != "d" {
			t.Error("TopByUsage reordered its input")
		}
	})
}
