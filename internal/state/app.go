package state

// LoadingText is shown while a fetch is in flight.
const LoadingText = "Loading..."

// App is the application state. It is owned by the UI model and only changed
// from its update step, so it carries no locking.
type App struct {
	Count      int
	RandomData string
	Loading    bool

	AnimationRunning bool
	AnimationTime    float64 // milliseconds since the animation started
}

// Increment adds one to the counter. The counter is unbounded apart from
// integer wraparound.
func (a *App) Increment() { a.Count++ }

// Decrement subtracts one from the counter.
func (a *App) Decrement() { a.Count-- }

// Reset sets the counter to zero.
func (a *App) Reset() { a.Count = 0 }

// BeginFetch marks a fetch as started. It returns false, changing nothing,
// when a fetch is already in flight.
func (a *App) BeginFetch() bool {
	if a.Loading {
		return false
	}
	a.Loading = true
	a.RandomData = LoadingText
	return true
}

// FinishFetch stores a fetch result, or an error message, verbatim.
func (a *App) FinishFetch(text string) {
	a.Loading = false
	a.RandomData = text
}
