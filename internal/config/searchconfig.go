package config

// searchConfiguration holds the fixed-depth negamax search's tunables.
// There is deliberately no time control, transposition table size, or
// thread count here - the engine is single-threaded, fixed-depth, and owns
// no transposition table (spec §1 Non-goals).
type searchConfiguration struct {
	// Depth is the fixed search depth in plies used by the root search.
	Depth int

	// UseQuiescence toggles the capture/promotion quiescence extension.
	UseQuiescence bool
}

func defaultSearchConfiguration() searchConfiguration {
	return searchConfiguration{
		Depth:         6,
		UseQuiescence: true,
	}
}
