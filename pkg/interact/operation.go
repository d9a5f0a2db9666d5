package interact

// Operation is the kind of gesture, decided by which element was pressed.
type Operation int

const (
	// OperationMove reorders the item. Started from the item itself.
	OperationMove Operation = iota + 1
	// OperationResize changes the item's spans. Started from the handle.
	OperationResize
)

// String returns a string representation of the operation.
func (o Operation) String() string {
	switch o {
	case OperationMove:
		return "move"
	case OperationResize:
		return "resize"
	default:
		return "none"
	}
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	return o == OperationMove || o == OperationResize
}

// State is the controller state.
type State int

const (
	// StateIdle means no gesture is active.
	StateIdle State = iota
	// StateDragging means a pointer is held down on an item or handle.
	StateDragging
)

// String returns a string representation of the state.
func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}
