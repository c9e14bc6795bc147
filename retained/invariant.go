package retained

// invariant panics on a violated precondition in builds tagged tagflowdebug.
// Release builds carry on and the caller contains the damage.
func invariant(cond bool, msg string) {
	if debugAssertions && !cond {
		panic("tagflow: " + msg)
	}
}
