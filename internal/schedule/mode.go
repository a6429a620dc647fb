package schedule

import "github.com/llehouerou/dhwani/internal/catalog"

// Mode is either Sequential or Shuffled. History and the shuffle queue only
// exist inside Shuffled, so they cannot be populated while shuffle is off.
type Mode interface {
	isMode()
}

// Sequential schedules in catalog or custom order.
// Retained is the history of the last shuffle session; it is kept for
// display but never consulted for scheduling.
type Sequential struct {
	Retained History
}

// Shuffled schedules from a randomized backlog and navigates back through History.
type Shuffled struct {
	History History
	Queue   []catalog.Track
}

func (Sequential) isMode() {}
func (Shuffled) isMode()   {}
