package news

import (
	"fmt"
	"strings"
)

// LinkPlaceholder stands in for a missing link.
const LinkPlaceholder = "#"

const (
	SourceDemo   = "Demo"
	SourceManual = "Manual"
)

// Item is the resolved headline/link/source triple.
type Item struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
}

type Mode string

const (
	ModeAutomatic Mode = "auto"
	ModeManual    Mode = "manual"
	ModeURL       Mode = "url"
)

// Modes lists the selectable modes in the order they are offered to users.
var Modes = []Mode{ModeAutomatic, ModeManual, ModeURL}

func (m Mode) Label() string {
	switch m {
	case ModeAutomatic:
		return "Automático"
	case ModeManual:
		return "Texto Manual"
	case ModeURL:
		return "URL Personalizada"
	default:
		return string(m)
	}
}

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAutomatic, "":
		return ModeAutomatic, nil
	case ModeManual:
		return ModeManual, nil
	case ModeURL:
		return ModeURL, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// DemoItem is substituted when the automatic source cannot be scraped.
func DemoItem() Item {
	return Item{
		Title:  "Exemplo: Nova descoberta científica surpreende pesquisadores",
		Link:   LinkPlaceholder,
		Source: SourceDemo,
	}
}

// ManualItem builds an item from user input. Neither field is validated.
func ManualItem(title, link string) Item {
	if strings.TrimSpace(link) == "" {
		link = LinkPlaceholder
	}

	return Item{
		Title:  title,
		Link:   link,
		Source: SourceManual,
	}
}
