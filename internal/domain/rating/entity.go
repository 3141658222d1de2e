package rating

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	id        uuid.UUID
	courtID   uuid.UUID
	userEmail string
	score     Score
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewRating(courtID uuid.UUID, userEmail string, scoreValue int, commentText string, now time.Time) (*Rating, error) {
	if courtID == uuid.Nil {
		return nil, ErrCourtRequired
	}
	if userEmail == "" {
		return nil, ErrRaterRequired
	}

	score, err := NewScore(scoreValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Rating{
		id:        uuid.New(),
		courtID:   courtID,
		userEmail: userEmail,
		score:     score,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRating(
	id, courtID uuid.UUID,
	userEmail string,
	score Score,
	comment Comment,
	createdAt, updatedAt time.Time,
) *Rating {
	return &Rating{
		id:        id,
		courtID:   courtID,
		userEmail: userEmail,
		score:     score,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Revise replaces score and comment. Only the owning user may revise; that
// check lives in the use case layer where the caller identity is known.
func (r *Rating) Revise(scoreValue int, commentText string, now time.Time) error {
	score, err := NewScore(scoreValue)
	if err != nil {
		return err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return err
	}
	r.score = score
	r.comment = comment
	r.updatedAt = now
	return nil
}

func (r *Rating) IsOwnedBy(email string) bool {
	return r.userEmail == email
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) CourtID() uuid.UUID   { return r.courtID }
func (r *Rating) UserEmail() string    { return r.userEmail }
func (r *Rating) Score() Score         { return r.score }
func (r *Rating) Comment() Comment     { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
func (r *Rating) UpdatedAt() time.Time { return r.updatedAt }
