package notifier

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AdrianMos/cpp-examples/internal/entity"
)

// MobilePhone displays the full news: headline and story.
type MobilePhone struct {
	name    string
	out     io.Writer
	news    entity.News
	updates int
}

var _ entity.Observer = (*MobilePhone)(nil)

func NewMobilePhone(name string, out io.Writer) *MobilePhone {
	if out == nil {
		out = io.Discard
	}
	return &MobilePhone{name: name, out: out}
}

func (p *MobilePhone) Name() string {
	return p.name
}

// News returns the last received news.
func (p *MobilePhone) News() entity.News {
	return p.news
}

func (p *MobilePhone) Updates() int {
	return p.updates
}

func (p *MobilePhone) Update(headline, story string) {
	p.news = entity.NewNews(headline, story)
	p.updates++
	slog.Debug("mobile phone received news", "observer", p.name, "headline", headline)
	p.DisplayNews()
}

func (p *MobilePhone) DisplayNews() {
	if _, err := fmt.Fprintf(p.out, "Mobile phone \"%s\" received news: \"%s\"\n", p.name, p.news); err != nil {
		slog.Warn("failed to display news", "observer", p.name, "error", err)
	}
}
