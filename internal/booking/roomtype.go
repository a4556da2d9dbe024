package booking

import (
	"fmt"
	"strings"
)

type RoomType int

const (
	RoomTypeStandard RoomType = iota
	RoomTypeDeluxe
	RoomTypeExecutive
)

var roomTypeMultipliers = map[RoomType]float64{
	RoomTypeStandard:  1.00,
	RoomTypeDeluxe:    1.20,
	RoomTypeExecutive: 1.35,
}

var roomTypeNames = map[RoomType]string{
	RoomTypeStandard:  "STANDARD",
	RoomTypeDeluxe:    "DELUXE",
	RoomTypeExecutive: "EXECUTIVE",
}

// Multiplier is the factor applied to the hotel base price for this type.
func (t RoomType) Multiplier() float64 {
	return roomTypeMultipliers[t]
}

func (t RoomType) Valid() bool {
	_, ok := roomTypeMultipliers[t]

	return ok
}

func (t RoomType) String() string {
	if name, ok := roomTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("RoomType(%d)", int(t))
}

func ParseRoomType(s string) (RoomType, error) {
	for t, name := range roomTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("room type %q: %w", s, ErrInvalidRoomType)
}
