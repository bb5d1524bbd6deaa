package hotel

const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

var transitionMap = map[string]Status{
	ActionCheckIn:  StatusAvailable,
	ActionCheckOut: StatusOccupied,
}

// ValidTransition reports whether action may be applied to a room in status from.
func ValidTransition(action string, from Status) bool {
	required, ok := transitionMap[action]
	return ok && required == from
}
