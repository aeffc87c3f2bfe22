package game

type Director interface {
	/**
	 * Bind the director to a session
	 */
	Init(*Session)

	/**
	 * Perform a single action, returning false when there is nothing left to do
	 */
	Act() bool
}
