package entity

type Player struct {
	Name string
	Mark Mark
	Bot  bool
}

func NewHumanPlayer(mark Mark) *Player {
	return &Player{
		Name: "Player " + string(mark),
		Mark: mark,
	}
}

func NewBotPlayer(mark Mark) *Player {
	return &Player{
		Name: "Computer (" + string(mark) + ")",
		Mark: mark,
		Bot:  true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
