package console

// Command is a demo runnable from the console entry point. Name is the
// subcommand used on the command line, e.g. "news:demo".
type Command interface {
	Name() string
	Description() string
	Run() error
}
