package storyplayer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/privy-stories/internal/domain"
	"github.com/orgball2608/privy-stories/pkg/logger"
)

const (
	DefaultTickInterval = 50 * time.Millisecond
	DefaultItemDuration = 5 * time.Second
)

var (
	ErrNoStories       = errors.New("storyplayer: no stories to present")
	ErrIndexOutOfRange = errors.New("storyplayer: initial index out of range")
	ErrEmptyStory      = errors.New("storyplayer: story has no items")
	ErrNotOwnStory     = errors.New("storyplayer: only the viewer's own story can be deleted")
	ErrClosed          = errors.New("storyplayer: viewer is closed")
)

type State int

const (
	StatePlaying State = iota
	StatePaused
	StateConfirmingDelete
	StateClosed
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateConfirmingDelete:
		return "confirming_delete"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type CloseReason string

const (
	ReasonExhausted CloseReason = "exhausted"
	ReasonUser      CloseReason = "user"
	ReasonDeleted   CloseReason = "deleted"
)

// Closed is reported once when presentation ends.
type Closed struct {
	StoryIndex int    // last story index presented
	StoryID    string // id of that story
	Viewed     []string
	Reason     CloseReason
	OwnStory   bool
}

type Opts struct {
	Stories      []*domain.Story
	InitialIndex int
	IsOwnStory   bool

	// Callbacks run outside the engine lock and must not block.
	OnDeleteItem func(storyID, itemID string)
	OnClose      func(Closed)
	OnChange     func(View)

	TickInterval time.Duration
	ItemDuration time.Duration
	Clock        clockwork.Clock
	Scheduler    Scheduler
	Logger       logger.Logger
}

// Engine plays a sequence of stories item by item.
// All state is guarded by mu; ticks coming from the timer goroutine are
// serialised with user input through the same lock.
type Engine struct {
	mu sync.Mutex

	stories    []*domain.Story
	storyIndex int
	itemIndex  int
	elapsed    time.Duration
	paused     bool
	confirming bool
	closed     bool

	isOwnStory bool
	viewed     []string
	entered    map[string]struct{}

	timer      Handle
	generation uint64

	tickInterval time.Duration
	itemDuration time.Duration
	clock        clockwork.Clock
	scheduler    Scheduler
	logger       logger.Logger

	onDeleteItem func(storyID, itemID string)
	onClose      func(Closed)
	onChange     func(View)

	pending []func()
}

func New(opts Opts) (*Engine, error) {
	if len(opts.Stories) == 0 {
		return nil, ErrNoStories
	}
	if opts.InitialIndex < 0 || opts.InitialIndex >= len(opts.Stories) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, opts.InitialIndex, len(opts.Stories))
	}

	stories := make([]*domain.Story, len(opts.Stories))
	for i, s := range opts.Stories {
		if s.IsEmpty() {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyStory, i)
		}
		stories[i] = s.Clone()
	}

	e := &Engine{
		stories:      stories,
		storyIndex:   opts.InitialIndex,
		isOwnStory:   opts.IsOwnStory,
		entered:      make(map[string]struct{}),
		tickInterval: opts.TickInterval,
		itemDuration: opts.ItemDuration,
		clock:        opts.Clock,
		scheduler:    opts.Scheduler,
		logger:       opts.Logger,
		onDeleteItem: opts.OnDeleteItem,
		onClose:      opts.OnClose,
		onChange:     opts.OnChange,
	}
	if e.tickInterval <= 0 {
		e.tickInterval = DefaultTickInterval
	}
	if e.itemDuration <= 0 {
		e.itemDuration = DefaultItemDuration
	}
	if e.clock == nil {
		e.clock = clockwork.NewRealClock()
	}
	if e.scheduler == nil {
		e.scheduler = NewClockScheduler(e.clock)
	}
	if e.logger == nil {
		e.logger = logger.Nop()
	}

	e.mu.Lock()
	e.restartTimerLocked()
	e.mu.Unlock()

	e.logger.Debug("Story viewer opened", "story_index", e.storyIndex, "stories", len(stories), "own", e.isOwnStory)
	return e, nil
}

// run executes fn under the lock and then flushes queued callbacks.
func (e *Engine) run(fn func()) {
	e.mu.Lock()
	fn()
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()

	for _, cb := range pending {
		cb()
	}
}

// Tick adds one tick interval to the current item's progress.
func (e *Engine) Tick() {
	e.run(e.tickLocked)
}

func (e *Engine) Advance() {
	e.run(func() {
		if e.closed || e.confirming {
			return
		}
		e.advanceLocked()
	})
}

func (e *Engine) Retreat() {
	e.run(func() {
		if e.closed || e.confirming {
			return
		}
		e.retreatLocked()
	})
}

// HandleTap navigates back when x is inside the left third of the viewport, forward otherwise.
func (e *Engine) HandleTap(x, viewportWidth float64) {
	e.run(func() {
		if e.closed || e.confirming {
			return
		}
		if x < viewportWidth/3 {
			e.retreatLocked()
			return
		}
		e.advanceLocked()
	})
}

// SetPaused follows press-down (true) and press-up/leave (false).
// Resuming restarts the current item's countdown from zero.
func (e *Engine) SetPaused(paused bool) {
	e.run(func() {
		if e.closed || e.confirming || e.paused == paused {
			return
		}
		e.paused = paused
		if paused {
			e.stopTimerLocked()
			return
		}
		e.elapsed = 0
		e.restartTimerLocked()
	})
}

func (e *Engine) RequestDelete() error {
	var err error
	e.run(func() {
		switch {
		case e.closed:
			err = ErrClosed
		case !e.isOwnStory:
			err = ErrNotOwnStory
		case e.confirming:
		default:
			e.paused = true
			e.confirming = true
			e.stopTimerLocked()
		}
	})
	return err
}

// ConfirmDelete removes the current item locally and reports it through OnDeleteItem.
// The removal is optimistic: the outcome of the remote deletion is never awaited.
func (e *Engine) ConfirmDelete() error {
	var err error
	e.run(func() {
		switch {
		case e.closed:
			err = ErrClosed
		case !e.isOwnStory:
			err = ErrNotOwnStory
		default:
			e.confirmDeleteLocked()
		}
	})
	return err
}

func (e *Engine) CancelDelete() {
	e.run(func() {
		if e.closed || !e.confirming {
			return
		}
		e.confirming = false
		e.paused = false
		e.elapsed = 0
		e.restartTimerLocked()
	})
}

// Close ends presentation. Calling it more than once is a no-op.
func (e *Engine) Close() {
	e.run(func() {
		e.closeLocked(ReasonUser)
	})
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progressLocked()
}

func (e *Engine) Position() (storyIndex, itemIndex int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.storyIndex, e.itemIndex
}

// TimerActive reports whether a tick callback is currently scheduled.
func (e *Engine) TimerActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer != nil
}

func (e *Engine) tickLocked() {
	if e.closed || e.paused || e.confirming {
		return
	}
	e.enterLocked()
	e.elapsed += e.tickInterval
	if e.elapsed >= e.itemDuration {
		e.advanceLocked()
	}
}

func (e *Engine) advanceLocked() {
	e.enterLocked()
	e.stopTimerLocked()
	e.elapsed = 0

	story := e.stories[e.storyIndex]
	switch {
	case e.itemIndex < len(story.Items)-1:
		e.itemIndex++
	case e.storyIndex < len(e.stories)-1:
		e.storyIndex++
		e.itemIndex = 0
		e.enterLocked()
	default:
		e.closeLocked(ReasonExhausted)
		return
	}
	e.changedLocked()
}

func (e *Engine) retreatLocked() {
	switch {
	case e.itemIndex > 0:
		e.enterLocked()
		e.itemIndex--
	case e.storyIndex > 0:
		e.enterLocked()
		e.storyIndex--
		e.itemIndex = len(e.stories[e.storyIndex].Items) - 1
		e.enterLocked()
	default:
		return
	}
	e.elapsed = 0
	e.changedLocked()
}

func (e *Engine) confirmDeleteLocked() {
	e.enterLocked()
	story := e.stories[e.storyIndex]
	item := story.Items[e.itemIndex]
	removedLast := e.itemIndex == len(story.Items)-1

	if e.onDeleteItem != nil {
		cb := e.onDeleteItem
		e.pending = append(e.pending, func() { cb(story.ID, item.ID) })
	}
	story.RemoveItem(item.ID)
	e.logger.Info("Story item deleted", "story_id", story.ID, "item_id", item.ID, "remaining", len(story.Items))

	e.confirming = false
	e.paused = false
	e.elapsed = 0

	switch {
	case len(story.Items) == 0 && e.storyIndex == len(e.stories)-1:
		e.closeLocked(ReasonDeleted)
		return
	case len(story.Items) == 0:
		i := e.storyIndex
		e.stories = append(e.stories[:i:i], e.stories[i+1:]...)
		e.itemIndex = 0
		e.enterLocked()
	case removedLast:
		e.itemIndex = max(e.itemIndex-1, 0)
	}
	e.changedLocked()
}

func (e *Engine) closeLocked(reason CloseReason) {
	if e.closed {
		return
	}
	e.closed = true
	e.stopTimerLocked()

	closed := Closed{
		StoryIndex: e.storyIndex,
		StoryID:    e.stories[e.storyIndex].ID,
		Viewed:     append([]string(nil), e.viewed...),
		Reason:     reason,
		OwnStory:   e.isOwnStory,
	}
	e.logger.Debug("Story viewer closed", "reason", reason, "story_index", e.storyIndex, "viewed", len(closed.Viewed))

	if e.onClose != nil {
		cb := e.onClose
		e.pending = append(e.pending, func() { cb(closed) })
	}
}

// changedLocked runs after every item or story transition.
func (e *Engine) changedLocked() {
	if !e.paused && !e.confirming {
		e.restartTimerLocked()
	}
	e.logger.Debug("Story item changed", "story_index", e.storyIndex, "item_index", e.itemIndex)
	if e.onChange != nil {
		cb, v := e.onChange, e.viewLocked()
		e.pending = append(e.pending, func() { cb(v) })
	}
}

// enterLocked records the current story as viewed. The initial story only
// counts once a tick or a navigation has happened on it.
func (e *Engine) enterLocked() {
	id := e.stories[e.storyIndex].ID
	if _, ok := e.entered[id]; ok {
		return
	}
	e.entered[id] = struct{}{}
	e.viewed = append(e.viewed, id)
}

// restartTimerLocked is the only place a timer is created; it always
// cancels the previous one first.
func (e *Engine) restartTimerLocked() {
	e.stopTimerLocked()
	e.generation++
	gen := e.generation
	e.timer = e.scheduler.Every(e.tickInterval, func() {
		e.run(func() {
			if gen != e.generation || e.timer == nil {
				return
			}
			e.tickLocked()
		})
	})
}

func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) stateLocked() State {
	switch {
	case e.closed:
		return StateClosed
	case e.confirming:
		return StateConfirmingDelete
	case e.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

func (e *Engine) progressLocked() float64 {
	return float64(e.elapsed) / float64(e.itemDuration)
}
