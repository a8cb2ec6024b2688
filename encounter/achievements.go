package encounter

// AchievementSink records unlocked achievements. Unlock must be idempotent.
// The encounter does not exit while notifications are still pending.
type AchievementSink interface {
	Unlock(name string)
	HasPendingNotifications() bool
}

type Toast struct {
	Name       string
	FramesLeft int
}

// Achievements is the in-memory sink. Every first unlock queues a toast that
// stays up for a fixed number of frames; toasts are shown one at a time.
type Achievements struct {
	toastFrames int
	unlocked    map[string]bool
	order       []string
	queue       []Toast
}

func NewAchievements(toastFrames int) *Achievements {
	return &Achievements{
		toastFrames: max(toastFrames, 1),
		unlocked:    make(map[string]bool),
	}
}

func (a *Achievements) Unlock(name string) {
	if name == "" || a.unlocked[name] {
		return
	}
	a.unlocked[name] = true
	a.order = append(a.order, name)
	a.queue = append(a.queue, Toast{Name: name, FramesLeft: a.toastFrames})
}

func (a *Achievements) Unlocked(name string) bool {
	return a.unlocked[name]
}

// Names returns the unlocked achievements in unlock order.
func (a *Achievements) Names() []string {
	return append([]string(nil), a.order...)
}

func (a *Achievements) HasPendingNotifications() bool {
	return len(a.queue) > 0
}

// Active returns the toast currently on screen.
func (a *Achievements) Active() (Toast, bool) {
	if len(a.queue) == 0 {
		return Toast{}, false
	}
	return a.queue[0], true
}

// Update ages the visible toast by one frame.
func (a *Achievements) Update() {
	if len(a.queue) == 0 {
		return
	}
	a.queue[0].FramesLeft--
	if a.queue[0].FramesLeft <= 0 {
		a.queue = a.queue[1:]
	}
}
