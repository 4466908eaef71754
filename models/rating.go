package models

import (
	"errors"
	"sort"
)

// seedWeight is how many times the author's own effort guess is counted
// before user ratings are added to the estimate.
const seedWeight = 5

// ErrScoreOutOfRange is returned when an impact or effort score is not 1-5
var ErrScoreOutOfRange = errors.New("score must be between 1 and 5")

// Valid checks the like value is -1, 0 or 1 and the effort 0 (not given) to 5
func (r Rating) Valid() bool {
	return ValidLike(r.Rating) && r.Effort >= 0 && r.Effort <= 5
}

// ValidLike reports whether v is an accepted like value
func ValidLike(v int) bool {
	return v >= -1 && v <= 1
}

// ValidScore reports whether v is an accepted impact/effort score
func ValidScore(v int) bool {
	return v >= 1 && v <= 5
}

// CountLikes returns how many values in a like map are positive
func CountLikes(likes map[string]int) int {
	n := 0
	for _, v := range likes {
		if v > 0 {
			n++
		}
	}
	return n
}

// MedianEffort seeds the estimate with the author's guess and takes the
// middle element of the sorted estimates. On even lengths the upper middle
// is used.
func MedianEffort(authorEffort int, ratings map[string]Rating) int {
	efforts := make([]int, 0, seedWeight+len(ratings))
	for i := 0; i < seedWeight; i++ {
		efforts = append(efforts, authorEffort)
	}
	for _, r := range ratings {
		if r.Effort > 0 {
			efforts = append(efforts, r.Effort)
		}
	}
	sort.Ints(efforts)
	return efforts[len(efforts)/2]
}

// ReduceAction builds the read shape of an action for the given user. The
// comment and user counts are filled in by the caller.
func ReduceAction(a Action, userID string) ActionResponse {
	resp := ActionResponse{
		Effort: MedianEffort(a.Effort, a.Ratings),
	}
	for uid, r := range a.Ratings {
		if r.Rating > 0 {
			resp.NumLikes++
		}
		if uid == userID {
			resp.UserRating = r.Rating
			resp.UserEffort = r.Effort
		}
	}
	a.Ratings = nil
	resp.Action = a
	return resp
}

// ReduceComment builds the read shape of a comment for the given user
func ReduceComment(c Comment, userID string) CommentResponse {
	resp := CommentResponse{
		NumLikes:   CountLikes(c.Ratings),
		UserRating: c.Ratings[userID],
	}
	c.Ratings = nil
	resp.Comment = c
	return resp
}

// ReduceCommunity builds the read shape of a community for the given user
func ReduceCommunity(c Community, userID string) CommunityResponse {
	resp := CommunityResponse{
		NumLikes:   CountLikes(c.Ratings),
		UserRating: c.Ratings[userID],
	}
	c.Ratings = nil
	resp.Community = c
	return resp
}
