package course

import "testing"

func TestBuiltin_HasThreeCourses(t *testing.T) {
	cat := Builtin()
	ids := cat.IDs()
	want := []string{"salt-creek-retreat-in", "home-course-generic", "brickyard-crossing-in"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %s, want %s", i, ids[i], want[i])
		}
	}
}

func TestBuiltin_EveryCourseHas18Holes(t *testing.T) {
	for _, c := range Builtin().All() {
		if len(c.Holes) != HolesPerRound {
			t.Errorf("%s has %d holes, want %d", c.ID, len(c.Holes), HolesPerRound)
		}
		for i, h := range c.Holes {
			if h.Number != i+1 {
				t.Errorf("%s hole[%d].Number = %d, want %d", c.ID, i, h.Number, i+1)
			}
		}
	}
}

func TestBrickyard_ParLayout(t *testing.T) {
	c, ok := Builtin().Find("brickyard-crossing-in")
	if !ok {
		t.Fatal("brickyard not found")
	}

	tests := []struct {
		hole    int
		par     int
		yardage int
	}{
		{1, 4, 360},
		{5, 5, 440},
		{7, 3, 360},
		{12, 3, 460},
		{14, 5, 380},
		{17, 3, 440},
		{18, 4, 460},
	}
	for _, tt := range tests {
		h, ok := c.Hole(tt.hole)
		if !ok {
			t.Fatalf("hole %d missing", tt.hole)
		}
		if h.Par != tt.par || h.Yardage != tt.yardage {
			t.Errorf("hole %d = par %d / %d yds, want par %d / %d yds",
				tt.hole, h.Par, h.Yardage, tt.par, tt.yardage)
		}
	}
}

func TestFind_EmptyAndUnknown(t *testing.T) {
	cat := Builtin()
	if _, ok := cat.Find(""); ok {
		t.Error("empty id should not match")
	}
	if _, ok := cat.Find("pebble-beach"); ok {
		t.Error("unknown id should not match")
	}
	if _, ok := cat.Find("  home-course-generic "); !ok {
		t.Error("id with surrounding spaces should match")
	}
}

func TestSummaries(t *testing.T) {
	c, _ := Builtin().Find("salt-creek-retreat-in")

	if got, want := c.Summary(), "Nashville, IN · Par 71 · 18 holes"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if got, want := c.HoleSummary(3), "Hole 3 · Par 3 · ~165 yds"; got != want {
		t.Errorf("HoleSummary(3) = %q, want %q", got, want)
	}
	if got, want := c.HoleSummary(19), "Hole 19"; got != want {
		t.Errorf("HoleSummary(19) = %q, want %q", got, want)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	cat := Builtin()
	all := cat.All()
	all[0].Name = "mutated"

	c, _ := cat.Find(all[0].ID)
	if c.Name == "mutated" {
		t.Error("All() should return a copy")
	}
}
