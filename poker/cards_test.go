package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		face  Face
		suit  Suit
	}{
		{"2H", Two, Hearts},
		{"9C", Nine, Clubs},
		{"TD", Ten, Diamonds},
		{"JS", Jack, Spades},
		{"QH", Queen, Hearts},
		{"KD", King, Diamonds},
		{"AC", Ace, Clubs},
		{"ah", Ace, Hearts}, // lowercase accepted
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.face, card.Face)
			assert.Equal(t, tt.suit, card.Suit)
		})
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, input := range []string{"", "K", "KDX", "1D", "XD", "KX", "10H"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCard(input)
			assert.Error(t, err)
		})
	}
}

func TestCardString(t *testing.T) {
	for _, rep := range []string{"2C", "TD", "JH", "QS", "KC", "AD"} {
		card, err := ParseCard(rep)
		require.NoError(t, err)
		assert.Equal(t, rep, card.String())
	}
}

func TestFaceOrdering(t *testing.T) {
	order := []Face{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	for i := 1; i < len(order); i++ {
		assert.True(t, order[i] > order[i-1], "%s should outrank %s", order[i], order[i-1])
	}
}

func TestCardComparesByFaceOnly(t *testing.T) {
	kd := Card{Face: King, Suit: Diamonds}
	kh := Card{Face: King, Suit: Hearts}
	qs := Card{Face: Queen, Suit: Spades}

	assert.False(t, kd.Beats(kh))
	assert.False(t, kh.Beats(kd))
	assert.True(t, kd.Beats(qs))
	assert.False(t, qs.Beats(kd))
}
