package store

// Storage keys. The names and their versions are part of the on-disk
// format; bump the suffix when a value's shape changes.
const (
	KeyProfile     = "caddieIQ_profile_v1"
	KeyNotes       = "caddieIQ_notes_v1"
	KeyBag         = "caddieIQ_bag_v1"
	KeyStats       = "caddieIQ_stats_v1"
	KeyRounds      = "caddieIQ_rounds_v1"
	KeyActiveRound = "caddieIQ_active_round_v1"
)
