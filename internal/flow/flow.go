// Package flow implements the Welcome → List → AddForm navigation state machine.
package flow

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/christoffel/internal/menu"
	"github.com/five82/christoffel/internal/state"
)

// Screen identifies one of the three screens.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenList
	ScreenAddForm
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenList:
		return "list"
	case ScreenAddForm:
		return "add-form"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

var (
	// ErrInvalidTransition is returned when an operation is not allowed on
	// the current screen.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrRemovalPending is returned while a removal waits for confirmation.
	ErrRemovalPending = errors.New("removal awaiting confirmation")
)

// Mutator applies a new dish to the menu owned by the list screen.
type Mutator interface {
	Append(d menu.Dish) []menu.Dish
}

// Route is the active screen together with the parameters it was opened with.
type Route interface {
	Screen() Screen
	route()
}

// WelcomeRoute takes no parameters.
type WelcomeRoute struct{}

// ListRoute takes no parameters; the list renders from the store.
type ListRoute struct{}

// AddFormRoute carries the menu as it was when the form opened and the
// mutator that commits a new dish.
type AddFormRoute struct {
	Items   []menu.Dish
	Mutator Mutator
}

func (WelcomeRoute) Screen() Screen { return ScreenWelcome }
func (ListRoute) Screen() Screen    { return ScreenList }
func (AddFormRoute) Screen() Screen { return ScreenAddForm }

func (WelcomeRoute) route() {}
func (ListRoute) route()    {}
func (AddFormRoute) route() {}

// Flow tracks the current route and any removal awaiting confirmation.
type Flow struct {
	store   *state.Store
	route   Route
	pending *menu.Dish
	logger  *zap.SugaredLogger
}

// New returns a flow on the welcome screen backed by store.
func New(store *state.Store, logger *zap.SugaredLogger) *Flow {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Flow{store: store, route: WelcomeRoute{}, logger: logger}
}

// Route returns the active route.
func (f *Flow) Route() Route { return f.route }

// Screen returns the active screen.
func (f *Flow) Screen() Screen { return f.route.Screen() }

// Items returns the current menu.
func (f *Flow) Items() []menu.Dish { return f.store.Snapshot().Dishes }

// Explore moves from the welcome screen to the list.
func (f *Flow) Explore() error {
	if err := f.expect(ScreenWelcome, "explore"); err != nil {
		return err
	}
	f.goTo(ListRoute{})
	return nil
}

// OpenAddForm moves from the list to the add form, handing it the current
// menu and the store as mutator.
func (f *Flow) OpenAddForm() (AddFormRoute, error) {
	if err := f.expect(ScreenList, "open add form"); err != nil {
		return AddFormRoute{}, err
	}
	if f.pending != nil {
		return AddFormRoute{}, fmt.Errorf("open add form: %w", ErrRemovalPending)
	}
	r := AddFormRoute{Items: f.Items(), Mutator: f.store}
	f.goTo(r)
	return r, nil
}

// Submit builds a dish from e. On success the dish is committed through the
// form's mutator and the flow returns to the list. Validation errors from
// menu.Build are returned unchanged and leave the form open.
func (f *Flow) Submit(e menu.Entry) (menu.Dish, error) {
	r, ok := f.route.(AddFormRoute)
	if !ok {
		return menu.Dish{}, fmt.Errorf("submit from %s: %w", f.Screen(), ErrInvalidTransition)
	}
	d, err := menu.Build(e)
	if err != nil {
		return menu.Dish{}, err
	}
	r.Mutator.Append(d)
	f.goTo(ListRoute{})
	return d, nil
}

// Cancel leaves the add form without changing the menu.
func (f *Flow) Cancel() error {
	if err := f.expect(ScreenAddForm, "cancel"); err != nil {
		return err
	}
	f.goTo(ListRoute{})
	return nil
}

// RequestRemoval marks the dish at index of the current menu for removal.
// The dish is remembered by ID, so the removal still targets it if the
// menu changes before the decision.
func (f *Flow) RequestRemoval(index int) (menu.Dish, error) {
	if err := f.expect(ScreenList, "request removal"); err != nil {
		return menu.Dish{}, err
	}
	if f.pending != nil {
		return menu.Dish{}, fmt.Errorf("request removal: %w", ErrRemovalPending)
	}
	items := f.Items()
	if index < 0 || index >= len(items) {
		return menu.Dish{}, fmt.Errorf("request removal: index %d out of range [0,%d)", index, len(items))
	}
	d := items[index]
	f.pending = &d
	return d, nil
}

// PendingRemoval returns the dish awaiting confirmation, if any.
func (f *Flow) PendingRemoval() (menu.Dish, bool) {
	if f.pending == nil {
		return menu.Dish{}, false
	}
	return *f.pending, true
}

// ConfirmRemoval removes the pending dish. It reports false when nothing
// was pending or the dish is already gone.
func (f *Flow) ConfirmRemoval() (menu.Dish, bool) {
	if f.pending == nil {
		return menu.Dish{}, false
	}
	d := *f.pending
	f.pending = nil
	_, ok := f.store.Remove(d.ID)
	return d, ok
}

// CancelRemoval drops the pending removal without changing the menu.
func (f *Flow) CancelRemoval() {
	f.pending = nil
}

func (f *Flow) expect(want Screen, op string) error {
	if got := f.Screen(); got != want {
		return fmt.Errorf("%s from %s: %w", op, got, ErrInvalidTransition)
	}
	return nil
}

func (f *Flow) goTo(r Route) {
	f.logger.Debugw("navigate", "from", f.Screen().String(), "to", r.Screen().String())
	f.route = r
}
