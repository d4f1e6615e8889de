package attendance

// LockState is the presentation state of the daily form.
type LockState int

const (
	Unlocked LockState = iota
	Locked
)

func (s LockState) String() string {
	if s == Locked {
		return "locked"
	}
	return "unlocked"
}

// Form tracks whether the day can be edited. Loading a day with records
// locks it; only Unlock moves it back, and nothing re-locks it except a
// fresh load.
type Form struct {
	state LockState
}

// Load applies the result of fetching a day with recordCount records.
func (f *Form) Load(recordCount int) {
	if recordCount > 0 {
		f.state = Locked
		return
	}
	f.state = Unlocked
}

// Unlock is the manual edit transition.
func (f *Form) Unlock() {
	f.state = Unlocked
}

func (f *Form) State() LockState {
	return f.state
}

// Editable reports whether inputs accept changes.
func (f *Form) Editable() bool {
	return f.state == Unlocked
}

// SubmitVisible reports whether the save action is offered.
func (f *Form) SubmitVisible() bool {
	return f.state == Unlocked
}

// EditVisible reports whether the edit action is offered in place of save.
func (f *Form) EditVisible() bool {
	return f.state == Locked
}
