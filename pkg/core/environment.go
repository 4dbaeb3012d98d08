package core

import "github.com/golang/geo/r3"

// Environment supplies a background color for rays that leave the scene.
type Environment interface {
	Sample(dir r3.Vector) Color
}
