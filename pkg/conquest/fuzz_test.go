package conquest

import "testing"

// FuzzProcessTurn plays AI-only games from arbitrary seeds and checks the
// state invariants after every turn.
func FuzzProcessTurn(f *testing.F) {
	f.Add(int64(1), int64(2))
	f.Add(int64(42), int64(7))
	f.Add(int64(-5), int64(99))

	f.Fuzz(func(t *testing.T, setupSeed, turnSeed int64) {
		if setupSeed == 0 {
			setupSeed = 1
		}
		gs := startedGame(t, setupSeed)
		rng := seeded(turnSeed)
		for i := 0; i < 20 && gs.Status == StatusPlaying; i++ {
			gs = ProcessTurn(gs, rng)
			checkInvariants(t, gs)
		}
	})
}
