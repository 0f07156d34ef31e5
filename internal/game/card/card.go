package card

import (
	"fmt"
	"strconv"
)

// Suit 花色
type Suit int

// Rank 点数
type Rank int

// Card is one of the 52 distinct cards. Values are comparable and usable as map keys.
type Card struct {
	Rank Rank
	Suit Suit
}

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "T",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

var charToRank = map[rune]Rank{
	'2': Two,
	'3': Three,
	'4': Four,
	'5': Five,
	'6': Six,
	'7': Seven,
	'8': Eight,
	'9': Nine,
	'T': Ten,
	'J': Jack,
	'Q': Queen,
	'K': King,
	'A': Ace,
}

// charToSuit accepts both the ASCII letter and the symbol.
var charToSuit = map[rune]Suit{
	'S': Spades,
	'H': Hearts,
	'D': Diamonds,
	'C': Clubs,
	'♠': Spades,
	'♥': Hearts,
	'♦': Diamonds,
	'♣': Clubs,
}

func RankFromChar(char rune) (Rank, error) {
	if rank, ok := charToRank[char]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("unknown rank: %c", char)
}

func SuitFromChar(char rune) (Suit, error) {
	if suit, ok := charToSuit[char]; ok {
		return suit, nil
	}
	return -1, fmt.Errorf("unknown suit: %c", char)
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsOneEyedJack reports whether the card removes an opposing chip (J♠, J♥).
func (c Card) IsOneEyedJack() bool {
	return c.Rank == Jack && (c.Suit == Spades || c.Suit == Hearts)
}

// IsTwoEyedJack reports whether the card is wild (J♦, J♣).
func (c Card) IsTwoEyedJack() bool {
	return c.Rank == Jack && (c.Suit == Diamonds || c.Suit == Clubs)
}

// IsJack reports whether the card is either jack variant.
func (c Card) IsJack() bool {
	return c.Rank == Jack
}

// Parse reads notation such as "TS", "T♠" or "10S".
func Parse(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) == 3 && runes[0] == '1' && runes[1] == '0' {
		runes = []rune{'T', runes[2]}
	}
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("invalid card notation: %q", s)
	}
	rank, err := RankFromChar(runes[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := SuitFromChar(runes[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// StandardDeck returns each suit/rank combination exactly once.
func StandardDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}
