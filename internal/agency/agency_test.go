package agency

import (
	"bytes"
	"sync"
	"testing"

	"github.com/AdrianMos/cpp-examples/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type delivery struct {
	observer string
	news     entity.News
}

// recorder collects deliveries of several observers in the order they happened.
type recorder struct {
	mu         sync.Mutex
	deliveries []delivery
}

func (r *recorder) add(observer, headline, story string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, delivery{observer: observer, news: entity.NewNews(headline, story)})
}

func (r *recorder) take() []delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := r.deliveries
	r.deliveries = nil
	return result
}

type recordingObserver struct {
	name string
	rec  *recorder
	// onUpdate runs after the delivery was recorded
	onUpdate func()
}

func newRecordingObserver(name string, rec *recorder) *recordingObserver {
	return &recordingObserver{name: name, rec: rec}
}

func (o *recordingObserver) Name() string {
	return o.name
}

func (o *recordingObserver) Update(headline, story string) {
	o.rec.add(o.name, headline, story)
	if o.onUpdate != nil {
		o.onUpdate()
	}
}

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) Update(headline, story string) {
	m.Called(headline, story)
}

func TestNewsAgency_Scenario(t *testing.T) {
	rec := &recorder{}
	a := NewNewsAgency("News agency", nil)
	watch := newRecordingObserver("W", rec)
	phone1 := newRecordingObserver("P1", rec)
	phone2 := newRecordingObserver("P2", rec)

	a.Publish("Headline #0", "Story0")
	assert.Empty(t, rec.take())

	require.NoError(t, a.Subscribe(watch))
	a.Publish("Headline #1", "Story1")
	assert.Equal(t, []delivery{
		{"W", entity.NewNews("Headline #1", "Story1")},
	}, rec.take())

	require.NoError(t, a.Subscribe(phone1))
	require.NoError(t, a.Subscribe(phone2))
	a.Publish("Headline #2", "Story2")
	assert.Equal(t, []delivery{
		{"W", entity.NewNews("Headline #2", "Story2")},
		{"P1", entity.NewNews("Headline #2", "Story2")},
		{"P2", entity.NewNews("Headline #2", "Story2")},
	}, rec.take())

	a.Unsubscribe(watch)
	a.Publish("Headline4", "Story4")
	assert.Equal(t, []delivery{
		{"P1", entity.NewNews("Headline4", "Story4")},
		{"P2", entity.NewNews("Headline4", "Story4")},
	}, rec.take())
	assert.Equal(t, entity.NewNews("Headline4", "Story4"), a.LastPublished())
}

func TestNewsAgency_PublishCallsEveryObserverOnce(t *testing.T) {
	first := &mockObserver{}
	second := &mockObserver{}
	first.On("Update", "Breaking", "Details").Return().Once()
	second.On("Update", "Breaking", "Details").Return().Once()

	a := NewNewsAgency("News agency", nil)
	require.NoError(t, a.Subscribe(first))
	require.NoError(t, a.Subscribe(second))
	a.Publish("Breaking", "Details")

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestNewsAgency_Subscribe_InvalidObserver(t *testing.T) {
	var typedNil *recordingObserver

	tests := []struct {
		name     string
		observer entity.Observer
	}{
		{name: "nil interface", observer: nil},
		{name: "typed nil pointer", observer: typedNil},
		{name: "not comparable", observer: sliceObserver{"a"}},
		{name: "comparable type holding a slice", observer: boxObserver{payload: []int{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewNewsAgency("News agency", nil)
			err := a.Subscribe(tt.observer)
			assert.ErrorIs(t, err, entity.ErrInvalidArgument)
			assert.Zero(t, a.Count())
			assert.NotPanics(t, func() {
				a.Unsubscribe(tt.observer)
				assert.False(t, a.IsSubscribed(tt.observer))
			})
		})
	}
}

type sliceObserver []string

func (s sliceObserver) Update(string, string) {}

type boxObserver struct {
	payload any
}

func (b boxObserver) Update(string, string) {}

func TestNewsAgency_BoxedObserversCompareByValue(t *testing.T) {
	a := NewNewsAgency("News agency", nil)
	require.NoError(t, a.Subscribe(boxObserver{payload: 1}))

	assert.NotPanics(t, func() {
		a.Unsubscribe(boxObserver{payload: []int{1}})
	})
	assert.True(t, a.IsSubscribed(boxObserver{payload: 1}))
	a.Unsubscribe(boxObserver{payload: 1})
	assert.Zero(t, a.Count())
}

func TestNewsAgency_Unsubscribe_NotSubscribed(t *testing.T) {
	rec := &recorder{}
	a := NewNewsAgency("News agency", nil)
	subscribed := newRecordingObserver("subscribed", rec)
	stranger := newRecordingObserver("stranger", rec)
	require.NoError(t, a.Subscribe(subscribed))

	assert.NotPanics(t, func() {
		a.Unsubscribe(stranger)
		a.Unsubscribe(nil)
	})
	assert.Equal(t, []entity.Observer{subscribed}, a.Observers())
	assert.ErrorIs(t, a.remove(stranger), entity.ErrNotSubscribed)
}

func TestNewsAgency_DuplicateSubscription(t *testing.T) {
	rec := &recorder{}
	a := NewNewsAgency("News agency", nil)
	phone := newRecordingObserver("P", rec)
	watch := newRecordingObserver("W", rec)

	require.NoError(t, a.Subscribe(phone))
	require.NoError(t, a.Subscribe(watch))
	require.NoError(t, a.Subscribe(phone))

	a.Publish("h", "s")
	news := entity.NewNews("h", "s")
	assert.Equal(t, []delivery{{"P", news}, {"W", news}, {"P", news}}, rec.take())

	// every occurrence goes away at once
	a.Unsubscribe(phone)
	assert.False(t, a.IsSubscribed(phone))
	a.Publish("h", "s")
	assert.Equal(t, []delivery{{"W", news}}, rec.take())
}

func TestNewsAgency_SelfUnsubscribeDuringPublish(t *testing.T) {
	rec := &recorder{}
	a := NewNewsAgency("News agency", nil)
	quitter := newRecordingObserver("quitter", rec)
	stayer := newRecordingObserver("stayer", rec)
	late := newRecordingObserver("late", rec)
	quitter.onUpdate = func() {
		a.Unsubscribe(quitter)
		require.NoError(t, a.Subscribe(late))
	}

	require.NoError(t, a.Subscribe(quitter))
	require.NoError(t, a.Subscribe(stayer))

	a.Publish("first", "story")
	first := entity.NewNews("first", "story")
	assert.Equal(t, []delivery{{"quitter", first}, {"stayer", first}}, rec.take())

	a.Publish("second", "story")
	second := entity.NewNews("second", "story")
	assert.Equal(t, []delivery{{"stayer", second}, {"late", second}}, rec.take())
}

func TestNewsAgency_PrintsNews(t *testing.T) {
	var out bytes.Buffer
	a := NewNewsAgency("Daily Planet", &out)
	observer := &mockObserver{}
	observer.On("Update", "Headline #1", "Story1").Return()
	require.NoError(t, a.Subscribe(observer))

	a.Publish("Headline #1", "Story1")

	assert.Equal(t, "\n\nDaily Planet is having 1 observers\n"+
		"   publishing: \"Headline #1: Story1\"\n"+
		"---------------------------------------------------\n", out.String())
}

func TestNewsAgency_ConcurrentAccess(t *testing.T) {
	rec := &recorder{}
	a := NewNewsAgency("News agency", nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := newRecordingObserver("o", rec)
			for j := 0; j < 50; j++ {
				assert.NoError(t, a.Subscribe(o))
				a.Publish("h", "s")
				a.Unsubscribe(o)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, a.Count())
	assert.NotEmpty(t, rec.take())
}
