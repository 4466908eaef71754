package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMedianEffort(t *testing.T) {
	tests := []struct {
		name     string
		author   int
		ratings  map[string]Rating
		expected int
	}{
		{
			name:     "no ratings returns the author guess",
			author:   3,
			ratings:  nil,
			expected: 3,
		},
		{
			name:   "a few dissenting ratings cannot outvote the author",
			author: 2,
			ratings: map[string]Rating{
				"a": {Effort: 5},
				"b": {Effort: 5},
				"c": {Effort: 5},
			},
			// [2 2 2 2 2 5 5 5] -> index 4
			expected: 2,
		},
		{
			name:   "enough ratings move the estimate",
			author: 1,
			ratings: map[string]Rating{
				"a": {Effort: 4},
				"b": {Effort: 4},
				"c": {Effort: 4},
				"d": {Effort: 4},
				"e": {Effort: 4},
				"f": {Effort: 4},
			},
			// [1 1 1 1 1 4 4 4 4 4 4] -> index 5
			expected: 4,
		},
		{
			name:   "even length takes the upper middle",
			author: 2,
			ratings: map[string]Rating{
				"a": {Effort: 3},
			},
			// [2 2 2 2 2 3] -> index 3
			expected: 2,
		},
		{
			name:   "ratings without an effort are ignored",
			author: 3,
			ratings: map[string]Rating{
				"a": {Rating: 1},
				"b": {Rating: -1},
			},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MedianEffort(tt.author, tt.ratings))
		})
	}
}

func TestReduceAction(t *testing.T) {
	a := Action{
		ID:     primitive.NewObjectID(),
		Name:   "Turn off standby",
		Effort: 2,
		Ratings: map[string]Rating{
			"u1": {Rating: 1, Effort: 1},
			"u2": {Rating: 1},
			"u3": {Rating: -1, Effort: 5},
			"u4": {Rating: 0},
		},
	}

	resp := ReduceAction(a, "u3")

	assert.Equal(t, 2, resp.NumLikes)
	assert.Equal(t, -1, resp.UserRating)
	assert.Equal(t, 5, resp.UserEffort)
	assert.Equal(t, 2, resp.Effort)
	assert.Nil(t, resp.Ratings)
	assert.Equal(t, "Turn off standby", resp.Name)
	// the caller's copy keeps its ratings
	assert.Len(t, a.Ratings, 4)
}

func TestReduceActionUnknownUser(t *testing.T) {
	resp := ReduceAction(Action{Effort: 4, Ratings: map[string]Rating{"u1": {Rating: 1}}}, "nobody")

	assert.Equal(t, 1, resp.NumLikes)
	assert.Equal(t, 0, resp.UserRating)
	assert.Equal(t, 4, resp.Effort)
}

func TestReduceComment(t *testing.T) {
	c := Comment{Comment: "nice", Ratings: map[string]int{"u1": 1, "u2": 1, "u3": -1}}

	resp := ReduceComment(c, "u2")

	assert.Equal(t, 2, resp.NumLikes)
	assert.Equal(t, 1, resp.UserRating)
	assert.Nil(t, resp.Ratings)
}

func TestReduceCommunity(t *testing.T) {
	c := Community{Name: "Green street", Ratings: map[string]int{"u1": 1}}

	resp := ReduceCommunity(c, "u9")

	assert.Equal(t, 1, resp.NumLikes)
	assert.Equal(t, 0, resp.UserRating)
	assert.Nil(t, resp.Ratings)
}

func TestRatingValid(t *testing.T) {
	assert.True(t, Rating{Rating: 1, Effort: 5}.Valid())
	assert.True(t, Rating{Rating: -1, Effort: 0}.Valid())
	assert.False(t, Rating{Rating: 2}.Valid())
	assert.False(t, Rating{Rating: 0, Effort: 6}.Valid())
	assert.False(t, Rating{Rating: 0, Effort: -1}.Valid())
}

func TestValidScore(t *testing.T) {
	assert.False(t, ValidScore(0))
	assert.True(t, ValidScore(1))
	assert.True(t, ValidScore(5))
	assert.False(t, ValidScore(6))
}
