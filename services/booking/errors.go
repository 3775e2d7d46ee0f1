package booking

// SlotTakenError signals that the requested start time is no longer free.
type SlotTakenError struct {
	Time string
}

func (e SlotTakenError) Error() string {
	return "time slot " + e.Time + " is not available"
}

// ClosedError signals booking outside configured business hours.
type ClosedError struct {
	Reason string
}

func (e ClosedError) Error() string {
	return "salon is closed: " + e.Reason
}

// NotOwnerError signals an attempt to act on another client's appointment.
type NotOwnerError struct{}

func (e NotOwnerError) Error() string {
	return "appointment belongs to another client"
}

// InvalidTransitionError signals a status change the lifecycle does not allow.
type InvalidTransitionError struct {
	From, To string
}

func (e InvalidTransitionError) Error() string {
	return "cannot move appointment from " + e.From + " to " + e.To
}
