package advice

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/caddie-iq/internal/player"
)

// --- Wind model ---

func TestApplyWind_NoWindIsIdentity(t *testing.T) {
	for _, d := range []float64{1, 87.5, 150, 250, 412.3} {
		got, comment := ApplyWind(d, WindNone, DirNone)
		assert.Equal(t, d, got)
		assert.Empty(t, comment)

		got, comment = ApplyWind(d, WindStrong, DirNone)
		assert.Equal(t, d, got, "direction none ignores strength")
		assert.Empty(t, comment)

		got, comment = ApplyWind(d, WindNone, DirInto)
		assert.Equal(t, d, got, "strength none ignores direction")
		assert.Empty(t, comment)
	}
}

func TestApplyWind_Table(t *testing.T) {
	tests := []struct {
		strength WindStrength
		dir      WindDirection
		want     float64
		comment  string
	}{
		{WindLight, DirInto, 210, "Light headwind"},
		{WindLight, DirWith, 190, "Light downwind"},
		{WindMedium, DirInto, 220, "Medium headwind"},
		{WindMedium, DirWith, 180, "Medium downwind"},
		{WindStrong, DirInto, 236, "Strong headwind"},
		{WindStrong, DirWith, 170, "Strong downwind"},
	}
	for _, tt := range tests {
		got, comment := ApplyWind(200, tt.strength, tt.dir)
		assert.InDelta(t, tt.want, got, 1e-9, "%s/%s", tt.strength, tt.dir)
		assert.True(t, strings.HasPrefix(comment, tt.comment), "%s/%s comment = %q", tt.strength, tt.dir, comment)
	}
}

func TestApplyWind_StrongHeadwind250(t *testing.T) {
	got, comment := ApplyWind(250, WindStrong, DirInto)
	assert.InDelta(t, 295, got, 1e-9)
	assert.Equal(t, "Strong headwind: 1–2 extra clubs and a solid, controlled swing.", comment)
}

func TestApplyWind_CrosswindKeepsDistance(t *testing.T) {
	for _, s := range []WindStrength{WindLight, WindMedium, WindStrong} {
		for _, d := range []WindDirection{DirCrossLeft, DirCrossRight} {
			got, comment := ApplyWind(160, s, d)
			assert.Equal(t, 160.0, got)
			assert.Equal(t, CrosswindComment, comment)
		}
	}
}

func TestApplyWind_UnknownValuesAreCalm(t *testing.T) {
	got, comment := ApplyWind(150, "gale", DirInto)
	assert.Equal(t, 150.0, got)
	assert.Empty(t, comment)
}

func TestValidateWind(t *testing.T) {
	assert.NoError(t, ValidateWind("", ""))
	assert.NoError(t, ValidateWind(WindMedium, DirCrossLeft))
	assert.Error(t, ValidateWind("gale", DirInto))
	assert.Error(t, ValidateWind(WindLight, "sideways"))
}

// --- Club selector ---

func TestSuggestClub_Boundaries(t *testing.T) {
	tests := []struct {
		distance float64
		want     string
	}{
		{300, "Driver or strong 3 wood"},
		{230.01, "Driver or strong 3 wood"},
		{230, "3 wood or hybrid"},
		{210, "5 wood / hybrid"},
		{195, "4 or 5 iron"},
		{180, "6 iron"},
		{165.01, "6 iron"},
		{165, "7 iron"},
		{155, "8 iron"},
		{145, "9 iron"},
		{135, "Pitching wedge"},
		{120, "Gap wedge"},
		{105, "Sand wedge"},
		{90.5, "Sand wedge"},
		{90, ShortGameClub},
		{0, ShortGameClub},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SuggestClub(tt.distance), "SuggestClub(%v)", tt.distance)
	}
}

func TestSuggestClub_MonotonicReach(t *testing.T) {
	rank := map[string]int{}
	for i, b := range clubBands {
		rank[b.label] = i
	}
	rank[ShortGameClub] = len(clubBands)

	prev := rank[SuggestClub(230)]
	for d := 230.0; d > 90; d -= 0.5 {
		cur := rank[SuggestClub(d)]
		require.GreaterOrEqual(t, cur, prev, "reach should not increase as distance drops (d=%v)", d)
		prev = cur
	}
}

// --- Bag matcher ---

func TestNearestClub_Empty(t *testing.T) {
	_, ok := NearestClub(150, nil)
	assert.False(t, ok)
}

func TestNearestClub_PicksClosest(t *testing.T) {
	bag := []player.BagEntry{
		{Club: "6i", Carry: 165},
		{Club: "7i", Carry: 152},
		{Club: "8i", Carry: 140},
	}
	got, ok := NearestClub(149, bag)
	require.True(t, ok)
	assert.Equal(t, "7i", got.Club)
}

func TestNearestClub_TieBreaksByCanonicalOrder(t *testing.T) {
	bag := []player.BagEntry{
		{Club: "8i", Carry: 140},
		{Club: "7i", Carry: 160},
	}
	got, ok := NearestClub(150, bag)
	require.True(t, ok)
	assert.Equal(t, "7i", got.Club, "7i precedes 8i in club order")

	reversed := []player.BagEntry{bag[1], bag[0]}
	got, _ = NearestClub(150, reversed)
	assert.Equal(t, "7i", got.Club, "result must not depend on input order")
}

// --- Distance parsing ---

func TestParseDistance(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"152", 152, true},
		{" 152.5 ", 152.5, true},
		{"150 yds", 150, true},
		{"140y", 140, true},
		{"", 0, false},
		{"0", 0, false},
		{"-20", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDistance(tt.raw)
		assert.Equal(t, tt.ok, ok, "ParseDistance(%q)", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseDistance(%q)", tt.raw)
		}
	}
}

// --- Synthesizer ---

func TestSynthesize_NeedsDistance(t *testing.T) {
	for _, d := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		adv := Synthesize(ShotContext{Distance: d}, Context{})
		assert.True(t, adv.NeedsInput(), "distance %v", d)
		assert.Equal(t, PromptNeedDistance, adv.Prompt)
	}
}

func TestSynthesize_Defaults(t *testing.T) {
	adv := Synthesize(ShotContext{Distance: 150}, Context{})
	require.False(t, adv.NeedsInput())
	rec := adv.Recommendation

	assert.Equal(t, "8 iron", rec.SuggestedClub)
	assert.Equal(t, "Suggested club: 8 iron for about 150 yards.", rec.Club)
	assert.Equal(t, StrategySafeTarget, rec.Strategy)
	assert.Equal(t, WindCalm+"\n"+LieNote(LieFairway), rec.Conditions)
	assert.Equal(t, DefaultMentalCue, rec.MentalCue)
	assert.Nil(t, rec.NearestClub)
}

func TestSynthesize_ClubSectionWithSavedContext(t *testing.T) {
	shot := ShotContext{Distance: 140, WindStrength: WindMedium, WindDirection: DirInto}
	ctx := Context{
		Profile: player.Profile{Shape: "draw"},
		Note:    player.HoleNote{PreferredClub: "7 iron"},
		Bag: []player.BagEntry{
			{Club: "7i", Label: "7 iron", Carry: 158},
			{Club: "driver", Label: "Driver", Carry: 240},
		},
	}

	rec := Synthesize(shot, ctx).Recommendation
	require.NotNil(t, rec)

	assert.Equal(t, 154, rec.RoundedDistance())
	assert.Equal(t, "8 iron", rec.SuggestedClub)
	assert.Equal(t,
		"Suggested club: 8 iron (you like 7 iron here) for about 154 yards."+
			" You tend to play a draw, so picture that shape into this target."+
			" Your 7 iron carries about 158 yards, a close match for this number.",
		rec.Club)
	assert.True(t, strings.HasPrefix(rec.Conditions, "Medium headwind"))
}

func TestSynthesize_BagMatchOutsideWindowOmitted(t *testing.T) {
	ctx := Context{Bag: []player.BagEntry{{Club: "pw", Label: "PW", Carry: 120}}}
	rec := Synthesize(ShotContext{Distance: 150}, ctx).Recommendation
	require.NotNil(t, rec)
	assert.Nil(t, rec.NearestClub)
	assert.NotContains(t, rec.Club, "PW")

	ctx.CloseMatchYards = 30
	rec = Synthesize(ShotContext{Distance: 150}, ctx).Recommendation
	require.NotNil(t, rec.NearestClub)
	assert.Equal(t, "pw", rec.NearestClub.Club)
}

func TestSynthesize_LeftAndLongHazards(t *testing.T) {
	shot := ShotContext{Distance: 140, Hazards: Hazards{Left: true, Long: true}}
	rec := Synthesize(shot, Context{}).Recommendation
	require.NotNil(t, rec)

	right := strings.Index(rec.Strategy, "Favor the right half")
	short := strings.Index(rec.Strategy, "Short or pin-high is ideal")
	require.GreaterOrEqual(t, right, 0)
	require.GreaterOrEqual(t, short, 0)
	assert.Less(t, right, short, "lateral text comes before depth text")
	assert.Equal(t, StrategyFavorRight+" "+StrategyFavorShort, rec.Strategy)
}

func TestHazardPlan(t *testing.T) {
	tests := []struct {
		name string
		h    Hazards
		want string
	}{
		{"none", Hazards{}, StrategySafeTarget},
		{"left", Hazards{Left: true}, StrategyFavorRight},
		{"right", Hazards{Right: true}, StrategyFavorLeft},
		{"both sides", Hazards{Left: true, Right: true}, StrategyCentered},
		{"short", Hazards{Short: true}, StrategyFavorLong},
		{"long", Hazards{Long: true}, StrategyFavorShort},
		{"short and long only", Hazards{Short: true, Long: true}, StrategySafeTarget},
		{"right and short", Hazards{Right: true, Short: true}, StrategyFavorLeft + " " + StrategyFavorLong},
		{"everything", Hazards{Left: true, Right: true, Short: true, Long: true}, StrategyCentered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HazardPlan(tt.h))
		})
	}
}

func TestSynthesize_StrategyAppendsSavedNotes(t *testing.T) {
	ctx := Context{Note: player.HoleNote{SafeTarget: "middle of green", DangerNote: "water right"}}
	rec := Synthesize(ShotContext{Distance: 120}, ctx).Recommendation
	require.NotNil(t, rec)

	assert.Equal(t,
		StrategySafeTarget+"\nYour saved safe target: middle of green\nYour danger reminder: water right",
		rec.Strategy)
}

func TestSynthesize_LieNotes(t *testing.T) {
	for lie, note := range lieNotes {
		rec := Synthesize(ShotContext{Distance: 100, Lie: lie}, Context{}).Recommendation
		require.NotNil(t, rec)
		assert.True(t, strings.HasSuffix(rec.Conditions, note), "lie %s", lie)
	}
	assert.Equal(t, lieNotes[LieFairway], LieNote(""))
	assert.Equal(t, lieNotes[LieFairway], LieNote("divot"))
}

func TestSynthesize_SavedMentalCue(t *testing.T) {
	ctx := Context{Note: player.HoleNote{MentalCue: "Tempo, tempo"}}
	rec := Synthesize(ShotContext{Distance: 100}, ctx).Recommendation
	require.NotNil(t, rec)
	assert.Equal(t, "Tempo, tempo", rec.MentalCue)
}
