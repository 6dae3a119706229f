package appliers

// ApplyWait lets the turn pass. Always succeeds: time and energy were
// the whole point.
func ApplyWait(ctx *Context) Result {
	return Completed
}
