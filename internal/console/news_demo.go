package console

import (
	"io"
	"log/slog"

	"github.com/AdrianMos/cpp-examples/internal/agency"
	"github.com/AdrianMos/cpp-examples/internal/config"
	"github.com/AdrianMos/cpp-examples/internal/notifier"
)

type NewsDemoCommand struct {
	out io.Writer
}

func NewNewsDemoCommand(out io.Writer) *NewsDemoCommand {
	cmd := NewsDemoCommand{out: out}
	return &cmd
}

func (cmd *NewsDemoCommand) Name() string {
	return "news:demo"
}

func (cmd *NewsDemoCommand) Description() string {
	return "publishes news to phones and watches subscribed to the news agency"
}

func (cmd *NewsDemoCommand) Run() error {
	conf := config.GetConfig()
	return runNewsDemo(conf.AgencyName, cmd.out)
}

func runNewsDemo(agencyName string, out io.Writer) error {
	slog.Info("running news agency demo")

	newsAgency := agency.NewNewsAgency(agencyName, out)

	smartWatch1 := notifier.NewSmartWatch("Alex's watch", out)
	mobilePhone1 := notifier.NewMobilePhone("Leo's phone", out)
	mobilePhone2 := notifier.NewMobilePhone("Alex's phone", out)

	newsAgency.Publish("Headline #0", "Story0")

	// Subscribe first observer
	if err := newsAgency.Subscribe(smartWatch1); err != nil {
		return err
	}
	newsAgency.Publish("Headline #1", "Story1")

	// Subscribe two more observers
	for _, phone := range []*notifier.MobilePhone{mobilePhone1, mobilePhone2} {
		if err := newsAgency.Subscribe(phone); err != nil {
			return err
		}
	}
	newsAgency.Publish("Headline #2", "Story2")
	newsAgency.Publish("Headline #3", "Story3")

	newsAgency.Unsubscribe(smartWatch1)
	newsAgency.Publish("Headline4", "Story4")

	slog.Info("news agency demo finished", "agency", newsAgency.Name(), "observers_count", newsAgency.Count())

	return nil
}
