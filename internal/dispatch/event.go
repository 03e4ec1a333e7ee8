package dispatch

// Kind identifies an event.
type Kind int

const (
	KindShowMenu Kind = iota + 1
	KindCancel
	KindBack
	KindCharacter
)

// Event is a symbolic menu event. Char is set only for KindCharacter.
type Event struct {
	Kind Kind
	Char byte
}

func ShowMenu() Event        { return Event{Kind: KindShowMenu} }
func Cancel() Event          { return Event{Kind: KindCancel} }
func Back() Event            { return Event{Kind: KindBack} }
func Character(c byte) Event { return Event{Kind: KindCharacter, Char: c} }
