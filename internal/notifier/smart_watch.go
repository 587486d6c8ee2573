package notifier

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AdrianMos/cpp-examples/internal/entity"
)

// SmartWatch has a small screen and keeps only headlines.
type SmartWatch struct {
	name     string
	out      io.Writer
	headline string
	updates  int
}

var _ entity.Observer = (*SmartWatch)(nil)

func NewSmartWatch(name string, out io.Writer) *SmartWatch {
	if out == nil {
		out = io.Discard
	}
	return &SmartWatch{name: name, out: out}
}

func (w *SmartWatch) Name() string {
	return w.name
}

func (w *SmartWatch) Headline() string {
	return w.headline
}

func (w *SmartWatch) Updates() int {
	return w.updates
}

// Update ignores the story, only the headline fits on the screen.
func (w *SmartWatch) Update(headline, _ string) {
	w.headline = headline
	w.updates++
	slog.Debug("smart watch received news", "observer", w.name, "headline", headline)
	w.DisplayHeadline()
}

func (w *SmartWatch) DisplayHeadline() {
	if _, err := fmt.Fprintf(w.out, "Smart watch \"%s\" received news: \"%s\"\n", w.name, w.headline); err != nil {
		slog.Warn("failed to display headline", "observer", w.name, "error", err)
	}
}
