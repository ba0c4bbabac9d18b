package event

// MovePayload carries the step direction per axis, each in {-1, 0, 1}
type MovePayload struct {
	DX, DY int
}

// ResizePayload carries the new logical surface size
type ResizePayload struct {
	Width, Height float64
}
