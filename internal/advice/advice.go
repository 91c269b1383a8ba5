package advice

import (
	"fmt"
	"strings"
)

// Fixed caddie phrases.
const (
	PromptNeedDistance = "Give me at least a distance and I'll suggest a club and target."

	StrategyFavorRight = "Favor the right half of your target and keep it away from the left trouble."
	StrategyFavorLeft  = "Favor the left half of your target and keep it away from the right trouble."
	StrategyCentered   = "Both sides have trouble, so pick a small central target and focus on a solid, centered start line."
	StrategyFavorLong  = "Anything just past the front edge is perfect; avoid coming up short."
	StrategyFavorShort = "Short or pin-high is ideal; favor a yardage that cannot fly long of the green."
	StrategySafeTarget = "Choose the safest part of the green or fairway as your target, not the pin, and commit fully to that picture."

	WindCalm = "Wind isn't a huge factor on this swing."

	DefaultMentalCue = "Deep breath, soft grip, pick one small target, and make a smooth, committed swing."
)

var lieNotes = map[Lie]string{
	LieFairway: "Standard lie: trust your normal yardages.",
	LieRough:   "From the rough, expect less spin and possible flyers. Favor the fat side of the target.",
	LieSand:    "From sand, prioritize solid contact and a stable base. Distance control is secondary.",
	LieOther:   "With a non-standard lie, simplify your thought: one smooth swing, solid contact.",
}

// LieNote returns the conditions sentence for a lie. Unknown or empty
// lies read as fairway.
func LieNote(l Lie) string {
	if note, ok := lieNotes[l]; ok {
		return note
	}
	return lieNotes[LieFairway]
}

// Synthesize builds the recommendation for a shot. A missing or
// non-positive distance short-circuits to a prompt.
func Synthesize(shot ShotContext, ctx Context) Advice {
	if !shot.HasDistance() {
		return Advice{Prompt: PromptNeedDistance}
	}

	adjusted, windNote := ApplyWind(shot.Distance, shot.WindStrength, shot.WindDirection)
	rec := &Recommendation{
		SuggestedClub:    SuggestClub(adjusted),
		PreferredClub:    ctx.Note.PreferredClub,
		AdjustedDistance: adjusted,
		SafeTarget:       ctx.Note.SafeTarget,
		DangerNote:       ctx.Note.DangerNote,
		WindNote:         windNote,
		LieNote:          LieNote(shot.Lie),
		MentalCue:        ctx.Note.MentalCue,
	}

	window := ctx.CloseMatchYards
	if window <= 0 {
		window = CloseMatchYards
	}
	if nearest, ok := NearestClub(adjusted, ctx.Bag); ok && CarryGap(nearest, adjusted) <= float64(window) {
		rec.NearestClub = &nearest
	}

	rec.Club = clubSection(rec, ctx.Profile.Shape)
	rec.Strategy = strategySection(shot.Hazards, rec.SafeTarget, rec.DangerNote)

	if rec.WindNote == "" {
		rec.Conditions = WindCalm + "\n" + rec.LieNote
	} else {
		rec.Conditions = rec.WindNote + "\n" + rec.LieNote
	}

	if rec.MentalCue == "" {
		rec.MentalCue = DefaultMentalCue
	}

	return Advice{Recommendation: rec}
}

func clubSection(rec *Recommendation, shape string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggested club: %s", rec.SuggestedClub)
	if rec.PreferredClub != "" {
		fmt.Fprintf(&b, " (you like %s here)", rec.PreferredClub)
	}
	fmt.Fprintf(&b, " for about %d yards.", rec.RoundedDistance())
	if shape != "" {
		fmt.Fprintf(&b, " You tend to play a %s, so picture that shape into this target.", shape)
	}
	if rec.NearestClub != nil {
		fmt.Fprintf(&b, " Your %s carries about %d yards, a close match for this number.",
			rec.NearestClub.Label, rec.NearestClub.Carry)
	}
	return b.String()
}

// HazardPlan returns the strategy sentence for the hazard layout, before
// any saved hole notes are appended.
func HazardPlan(h Hazards) string {
	var parts []string

	switch {
	case h.Left && !h.Right:
		parts = append(parts, StrategyFavorRight)
	case h.Right && !h.Left:
		parts = append(parts, StrategyFavorLeft)
	case h.Left && h.Right:
		parts = append(parts, StrategyCentered)
	}

	switch {
	case h.Short && !h.Long:
		parts = append(parts, StrategyFavorLong)
	case h.Long && !h.Short:
		parts = append(parts, StrategyFavorShort)
	}

	if len(parts) == 0 {
		return StrategySafeTarget
	}
	return strings.Join(parts, " ")
}

func strategySection(h Hazards, safeTarget, dangerNote string) string {
	lines := []string{HazardPlan(h)}
	if safeTarget != "" {
		lines = append(lines, "Your saved safe target: "+safeTarget)
	}
	if dangerNote != "" {
		lines = append(lines, "Your danger reminder: "+dangerNote)
	}
	return strings.Join(lines, "\n")
}
