package tem

import "strconv"

// Receiver is an optional downslope node. The zero value means "none":
// a boundary exit or an unresolved sink.
type Receiver struct {
	ID int
	OK bool
}

// To returns a receiver pointing at node id.
func To(id int) Receiver { return Receiver{ID: id, OK: true} }

// Get returns the receiver id and whether one exists.
func (r Receiver) Get() (int, bool) { return r.ID, r.OK }

func (r Receiver) String() string {
	if !r.OK {
		return "none"
	}
	return strconv.Itoa(r.ID)
}
