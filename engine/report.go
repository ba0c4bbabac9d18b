package engine

// Report counts what happened over a window of frames and applied events
// The frame loop turns it into sounds and metrics
type Report struct {
	Fired   int
	Kills   int
	Hits    int
	Pickups int
	Spawned int

	GameOver bool // game over was entered inside the window
	Reset    bool // a reset was applied inside the window
}

// Empty reports whether nothing happened
func (r Report) Empty() bool {
	return r == Report{}
}

func (r *Report) merge(o Report) {
	r.Fired += o.Fired
	r.Kills += o.Kills
	r.Hits += o.Hits
	r.Pickups += o.Pickups
	r.Spawned += o.Spawned
	r.GameOver = r.GameOver || o.GameOver
	r.Reset = r.Reset || o.Reset
}
