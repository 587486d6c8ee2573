package agency

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/AdrianMos/cpp-examples/internal/entity"
	"github.com/google/uuid"
)

const separator = "---------------------------------------------------"

// NewsAgency sends published news to all subscribed observers.
//
// The agency does not own its observers: it never creates or destroys them,
// it only keeps references in registration order.
type NewsAgency struct {
	name string
	out  io.Writer

	mu        sync.Mutex
	observers []entity.Observer
	last      entity.News
}

var _ entity.Subject = (*NewsAgency)(nil)

func NewNewsAgency(name string, out io.Writer) *NewsAgency {
	if out == nil {
		out = io.Discard
	}
	return &NewsAgency{name: name, out: out}
}

func (a *NewsAgency) Name() string {
	return a.name
}

// Subscribe appends observer to the list. The same observer may be
// subscribed more than once and then receives one update per subscription.
func (a *NewsAgency) Subscribe(observer entity.Observer) error {
	if err := validate(observer); err != nil {
		slog.Error("unable to subscribe observer", "error", err)
		return err
	}

	a.mu.Lock()
	a.observers = append(a.observers, observer)
	count := len(a.observers)
	a.mu.Unlock()

	slog.Debug("observer subscribed", "observer", describe(observer), "observers_count", count)
	return nil
}

// Unsubscribe removes every occurrence of observer. Unknown observers are ignored.
func (a *NewsAgency) Unsubscribe(observer entity.Observer) {
	if err := a.remove(observer); err != nil {
		if errors.Is(err, entity.ErrNotSubscribed) {
			slog.Debug("observer not subscribed, nothing to remove", "observer", describe(observer))
			return
		}
		slog.Warn("unable to unsubscribe observer", "error", err)
	}
}

func (a *NewsAgency) remove(observer entity.Observer) error {
	if err := validate(observer); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	kept := a.observers[:0]
	removed := 0
	for _, o := range a.observers {
		if o == observer {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	// Drop references left behind in the tail of the backing array
	for i := len(kept); i < len(a.observers); i++ {
		a.observers[i] = nil
	}
	a.observers = kept

	if removed == 0 {
		return entity.ErrNotSubscribed
	}
	slog.Debug("observer unsubscribed", "observer", describe(observer),
		"removed", removed, "observers_count", len(a.observers))
	return nil
}

// Publish stores the news and pushes it to the observers subscribed at the
// moment of the call, in registration order. Changes made to the subscriptions
// while observers are being updated take effect on the next publish.
func (a *NewsAgency) Publish(headline, story string) {
	news := entity.NewNews(headline, story)

	a.mu.Lock()
	a.last = news
	snapshot := make([]entity.Observer, len(a.observers))
	copy(snapshot, a.observers)
	a.mu.Unlock()

	publishID := uuid.NewString()
	slog.Info("publishing news", "publish_id", publishID, "headline", headline, "observers_count", len(snapshot))
	a.printNews(news, len(snapshot))

	for _, observer := range snapshot {
		slog.Debug("notifying observer", "publish_id", publishID, "observer", describe(observer))
		observer.Update(news.Headline, news.Story)
	}
}

func (a *NewsAgency) printNews(news entity.News, observersCount int) {
	if _, err := fmt.Fprintf(a.out, "\n\n%s is having %d observers\n   publishing: \"%s\"\n%s\n",
		a.name, observersCount, news, separator); err != nil {
		slog.Warn("failed to print news", "error", err)
	}
}

// LastPublished returns the most recently published news, zero value if none.
func (a *NewsAgency) LastPublished() entity.News {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// Observers returns a copy of the current subscriptions in registration order.
func (a *NewsAgency) Observers() []entity.Observer {
	a.mu.Lock()
	defer a.mu.Unlock()
	result := make([]entity.Observer, len(a.observers))
	copy(result, a.observers)
	return result
}

func (a *NewsAgency) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.observers)
}

func (a *NewsAgency) IsSubscribed(observer entity.Observer) bool {
	if validate(observer) != nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, o := range a.observers {
		if o == observer {
			return true
		}
	}
	return false
}

// validate rejects observers which can not be called or compared by identity.
func validate(observer entity.Observer) error {
	if observer == nil {
		return fmt.Errorf("%w: observer is nil", entity.ErrInvalidArgument)
	}
	v := reflect.ValueOf(observer)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		if v.IsNil() {
			return fmt.Errorf("%w: observer of type %T is nil", entity.ErrInvalidArgument, observer)
		}
	}
	// Checks the dynamic value: a struct with an interface field holding a
	// slice is a comparable type but panics on ==.
	if !v.Comparable() {
		return fmt.Errorf("%w: observer of type %T is not comparable", entity.ErrInvalidArgument, observer)
	}
	return nil
}

func describe(observer entity.Observer) string {
	if named, ok := observer.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", observer)
}
