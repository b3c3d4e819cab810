package components

import (
	"github.com/automoto/robofighter/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[resolv.Space]()

// GatewayData exposes region queries to systems; tests may swap in a stub.
type GatewayData struct {
	collision.Gateway
}

var Gateway = donburi.NewComponentType[GatewayData]()
