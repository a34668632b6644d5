package booking

// ownerTransitions enumerates the status changes a booking's owner may
// request. Owners may only cancel active bookings; every other change is an
// operator action.
var ownerTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCancelled: true,
	},
}

// adminTransitions enumerates the distinct status changes an admin may apply.
// Admins may move a booking between any two valid states, including out of
// terminal states to correct operator mistakes; re-applying the current
// status is handled as a no-op in Transition.
var adminTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
		StatusCompleted: true,
	},
	StatusConfirmed: {
		StatusPending:   true,
		StatusCancelled: true,
		StatusCompleted: true,
	},
	StatusCancelled: {
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: true,
	},
	StatusCompleted: {
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: true,
	},
}

// Transition applies a status change on behalf of an actor. Admins follow the
// full table, with the current status accepted as a no-op; owners may only
// cancel. A request the actor could never make regardless of the current state
// yields ErrTransitionForbidden, while a request the actor could make but not
// from the current state yields ErrTransitionInvalid.
func (b *Booking) Transition(to Status, isOwner, isAdmin bool) error {
	if !to.IsValid() {
		return ErrUnknownStatus
	}

	switch {
	case isAdmin:
		if to != b.status && !adminTransitions[b.status][to] {
			return ErrTransitionInvalid
		}
	case isOwner:
		if to != StatusCancelled {
			return ErrTransitionForbidden
		}
		if !ownerTransitions[b.status][to] {
			return ErrTransitionInvalid
		}
	default:
		return ErrTransitionForbidden
	}

	b.status = to

	return nil
}
