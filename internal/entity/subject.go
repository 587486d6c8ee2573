package entity

import "errors"

var (
	// ErrInvalidArgument is returned when an observer can not be registered.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotSubscribed reports removal of an observer that was never registered.
	ErrNotSubscribed = errors.New("observer not subscribed")
)

// Observer receives news pushed by a [Subject].
type Observer interface {
	Update(headline, story string)
}

// Subject keeps a list of observers and pushes every published story to them.
type Subject interface {
	Subscribe(observer Observer) error
	Unsubscribe(observer Observer)
	Publish(headline, story string)
}
