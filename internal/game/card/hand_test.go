package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Card
		hasError bool
	}{
		{name: "ASCII suit", input: "TS", expected: Card{Rank: Ten, Suit: Spades}},
		{name: "Symbol suit", input: "Q♥", expected: Card{Rank: Queen, Suit: Hearts}},
		{name: "Numeric ten", input: "10D", expected: Card{Rank: Ten, Suit: Diamonds}},
		{name: "Two-eyed jack", input: "JC", expected: Card{Rank: Jack, Suit: Clubs}},
		{name: "Unknown rank", input: "1S", hasError: true},
		{name: "Unknown suit", input: "2X", hasError: true},
		{name: "Too long", input: "2SS", hasError: true},
		{name: "Empty", input: "", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCard_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "T♠", MustParse("TS").String())
	assert.Equal(t, "A♦", MustParse("AD").String())
	assert.Equal(t, "2♣", MustParse("2C").String())
}

func TestJackVariants(t *testing.T) {
	t.Parallel()

	for _, c := range StandardDeck() {
		if c.Rank != Jack {
			assert.False(t, c.IsOneEyedJack(), c.String())
			assert.False(t, c.IsTwoEyedJack(), c.String())
			continue
		}
		// exactly one of the two variants
		assert.NotEqual(t, c.IsOneEyedJack(), c.IsTwoEyedJack(), c.String())
	}

	assert.True(t, MustParse("JS").IsOneEyedJack())
	assert.True(t, MustParse("JH").IsOneEyedJack())
	assert.True(t, MustParse("JD").IsTwoEyedJack())
	assert.True(t, MustParse("JC").IsTwoEyedJack())
}

func TestStandardDeck(t *testing.T) {
	t.Parallel()

	deck := StandardDeck()
	assert.Len(t, deck, 52)

	seen := make(map[Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestParseHand(t *testing.T) {
	t.Parallel()

	hand, err := ParseHand("2S  TH J♣")
	require.NoError(t, err)
	assert.Equal(t, Hand{MustParse("2S"), MustParse("TH"), MustParse("JC")}, hand)

	_, err = ParseHand("2S ZZ")
	assert.Error(t, err)
}

func TestHand_RemoveAt(t *testing.T) {
	t.Parallel()

	hand, err := ParseHand("2S 3S 4S")
	require.NoError(t, err)

	rest, removed := hand.RemoveAt(1)
	assert.Equal(t, MustParse("3S"), removed)
	assert.Equal(t, Hand{MustParse("2S"), MustParse("4S")}, rest)
	assert.True(t, rest.Contains(MustParse("4S")))
	assert.False(t, rest.Contains(MustParse("3S")))
	assert.Equal(t, 1, rest.IndexFunc(func(c Card) bool { return c.Rank == Four }))
	assert.Equal(t, -1, rest.IndexFunc(Card.IsJack))
}
