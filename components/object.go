package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space singleton. Objects must be added through
// the stored copy returned by Get.
var Space = donburi.NewComponentType[resolv.Space]()

// CenterX returns the horizontal center of the box.
func (o ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical center of the box.
func (o ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}
