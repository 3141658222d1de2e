package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCourtName   = errors.New("court name cannot be empty")
	ErrEmptyCourtType   = errors.New("court type cannot be empty")
	ErrInvalidPrice     = errors.New("price per session must be positive")
	ErrCourtNameTooLong = errors.New("court name is too long (max 255 characters)")
)

const (
	MaxCourtNameLength = 255
)

type Court struct {
	id         uuid.UUID
	name       string
	courtType  string
	image      string
	location   string
	priceCents int64
	slots      []string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCourt(name, courtType, image, location string, priceCents int64, slots []string, now time.Time) (*Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCourtName
	}
	if len(name) > MaxCourtNameLength {
		return nil, ErrCourtNameTooLong
	}
	if strings.TrimSpace(courtType) == "" {
		return nil, ErrEmptyCourtType
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Court{
		id:         uuid.New(),
		name:       name,
		courtType:  courtType,
		image:      image,
		location:   location,
		priceCents: priceCents,
		slots:      slots,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructCourt(
	id uuid.UUID,
	name, courtType, image, location string,
	priceCents int64,
	slots []string,
	createdAt, updatedAt time.Time,
) *Court {
	return &Court{
		id:         id,
		name:       name,
		courtType:  courtType,
		image:      image,
		location:   location,
		priceCents: priceCents,
		slots:      slots,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) Name() string         { return c.name }
func (c *Court) Type() string         { return c.courtType }
func (c *Court) Image() string        { return c.image }
func (c *Court) Location() string     { return c.location }
func (c *Court) PriceCents() int64    { return c.priceCents }
func (c *Court) Slots() []string      { return c.slots }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
