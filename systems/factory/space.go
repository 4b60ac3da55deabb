package factory

import (
	"github.com/automoto/brawl-arena/config"
	"github.com/solarlune/resolv"
)

// CreateSpace builds the collision space covering the whole stage.
func CreateSpace(cellWidth, cellHeight int) *resolv.Space {
	return resolv.NewSpace(int(config.C.Arena.Width), int(config.C.Arena.Height), cellWidth, cellHeight)
}
