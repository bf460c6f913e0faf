package state

// Settings holds the user preferences the menu binds to. Menu items keep
// pointers into the live copy, so edits take effect immediately.
type Settings struct {
	Sound      bool
	Vibrate    bool
	Brightness int32
	Contrast   int32
	Stiffness  int32
	Damping    int32
}

// DefaultSettings returns the factory preferences.
func DefaultSettings() Settings {
	return Settings{
		Sound:      true,
		Brightness: 50,
		Contrast:   80,
		Stiffness:  100,
		Damping:    12,
	}
}

type SettingsStore interface {
	Live() *Settings
	Saved() Settings
	Save()
	Revert()
	Dirty() bool
	Saves() int
}

type settingsStore struct {
	live  Settings
	saved Settings
	saves int
}

func NewSettingsStore(initial Settings) SettingsStore {
	return &settingsStore{live: initial, saved: initial}
}

func (s *settingsStore) Live() *Settings {
	return &s.live
}

func (s *settingsStore) Saved() Settings {
	return s.saved
}

func (s *settingsStore) Save() {
	s.saved = s.live
	s.saves++
}

// Revert restores the last saved values in place so bound pointers stay
// valid.
func (s *settingsStore) Revert() {
	s.live = s.saved
}

func (s *settingsStore) Dirty() bool {
	return s.live != s.saved
}

func (s *settingsStore) Saves() int {
	return s.saves
}
