package enum

// TableStatus represents the occupancy of a dining table. It is mutated by
// order confirm/complete/cancel transitions, not by the admin CRUD path.
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
)

func (s TableStatus) String() string {
	return string(s)
}
