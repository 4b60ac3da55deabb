package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

// Dead reports whether every life has been spent.
func (l *LivesData) Dead() bool { return l.Lives <= 0 }

var Lives = donburi.NewComponentType[LivesData]()
