package logic

// NextScreen returns the screen selected after a press of button b while
// current is shown. It is a two-state toggle, not a wraparound: Next while
// already on temperature and Previous while already on humidity are no-ops.
// The bool reports whether the screen changed.
func NextScreen(current Screen, b ButtonID) (Screen, bool) {
	switch {
	case b == ButtonNext && current == ScreenHumidity:
		return ScreenTemperature, true
	case b == ButtonPrevious && current == ScreenTemperature:
		return ScreenHumidity, true
	}
	return current, false
}
