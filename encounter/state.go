package encounter

// NumPlayers is the number of ship slots. Slot 1 is only used in co-op.
const NumPlayers = 2

// State is the per-slot progress of the players during the encounter.
type State struct {
	Level int
	Coop  bool

	Score          [NumPlayers]int
	Coins          [NumPlayers]int
	Lives          [NumPlayers]int
	BulletsShot    [NumPlayers]int
	ShipsDestroyed [NumPlayers]int
}

func NewState(level, lives int, coop bool) *State {
	s := &State{Level: level, Coop: coop}
	s.Lives[0] = lives
	if coop {
		s.Lives[1] = lives
	}
	return s
}

func validSlot(slot int) bool {
	return slot >= 0 && slot < NumPlayers
}

func (s *State) AddScore(slot, n int) {
	if validSlot(slot) {
		s.Score[slot] += n
	}
}

func (s *State) AddCoins(slot, n int) {
	if validSlot(slot) {
		s.Coins[slot] += n
	}
}

func (s *State) AddLife(slot, n int) {
	if validSlot(slot) {
		s.Lives[slot] += n
	}
}

// DecLife removes one life from slot, stopping at zero.
func (s *State) DecLife(slot int) {
	if validSlot(slot) && s.Lives[slot] > 0 {
		s.Lives[slot]--
	}
}

func (s *State) IncBulletsShot(slot int) {
	if validSlot(slot) {
		s.BulletsShot[slot]++
	}
}

func (s *State) IncShipsDestroyed(slot int) {
	if validSlot(slot) {
		s.ShipsDestroyed[slot]++
	}
}

func (s *State) LivesRemaining() int {
	total := 0
	for _, n := range s.Lives {
		total += n
	}
	return total
}

func (s *State) TotalScore() int {
	total := 0
	for _, n := range s.Score {
		total += n
	}
	return total
}

// ownerSlot maps a projectile owner id to the slot credited for a kill.
func ownerSlot(owner int) int {
	if owner == 2 {
		return 1
	}
	return 0
}
