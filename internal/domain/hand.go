package domain

import "sort"

// HandType classifies a legal set of played cards. The ordering of the
// constants is the hand strength ordering used when five-card hands of
// different types are compared under relaxed variants.
type HandType int

const (
	Single HandType = iota + 1
	Pair
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// CardCount returns the number of cards the hand type requires.
func (t HandType) CardCount() int {
	switch t {
	case Single:
		return 1
	case Pair:
		return 2
	default:
		return 5
	}
}

func (t HandType) String() string {
	switch t {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full_house"
	case FourOfAKind:
		return "four_of_a_kind"
	case StraightFlush:
		return "straight_flush"
	default:
		return "unknown"
	}
}

// ClassifyHand determines the hand type for a set of cards, or reports
// false when the cards form no legal hand. Five-card hands are checked
// strongest first so a straight flush never classifies as a plain flush.
func ClassifyHand(cards []Card) (HandType, bool) {
	switch len(cards) {
	case 1:
		return Single, true
	case 2:
		if cards[0].Rank == cards[1].Rank {
			return Pair, true
		}
		return 0, false
	case 5:
		straight := isStraight(cards)
		flush := isFlush(cards)
		switch {
		case straight && flush:
			return StraightFlush, true
		case isFourOfAKind(cards):
			return FourOfAKind, true
		case isFullHouse(cards):
			return FullHouse, true
		case flush:
			return Flush, true
		case straight:
			return Straight, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// isStraight checks for five consecutive comparison values. There is no
// wraparound: the 2 carries value 15, so it can never complete a low
// straight through the ace.
func isStraight(cards []Card) bool {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = int(c.Rank)
	}
	sort.Ints(values)
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

func isFullHouse(cards []Card) bool {
	counts := rankCounts(cards)
	if len(counts) != 2 {
		return false
	}
	for _, n := range counts {
		if n != 2 && n != 3 {
			return false
		}
	}
	return true
}

func isFourOfAKind(cards []Card) bool {
	for _, n := range rankCounts(cards) {
		if n == 4 {
			return true
		}
	}
	return false
}

func rankCounts(cards []Card) map[Rank]int {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}
