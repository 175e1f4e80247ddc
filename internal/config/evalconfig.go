package config

// evalConfiguration holds the static evaluator's tunables: base material
// values and whether piece-square tables are applied at all (useful for
// isolating material-only regression tests).
type evalConfiguration struct {
	PawnValue   int16
	KnightValue int16
	BishopValue int16
	RookValue   int16
	QueenValue  int16

	UsePieceSquareTables bool
}

func defaultEvalConfiguration() evalConfiguration {
	return evalConfiguration{
		PawnValue:            100,
		KnightValue:          300,
		BishopValue:          320,
		RookValue:            500,
		QueenValue:           900,
		UsePieceSquareTables: true,
	}
}
