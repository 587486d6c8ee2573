package entity

import "fmt"

type News struct {
	Headline string
	Story    string
}

func NewNews(headline, story string) News {
	return News{Headline: headline, Story: story}
}

// String returns "headline: story", the form used in console output.
func (n News) String() string {
	return fmt.Sprintf("%s: %s", n.Headline, n.Story)
}

func (n News) IsZero() bool {
	return n.Headline == "" && n.Story == ""
}
