// Package shape has simple geometry helpers.
package shape

// Rectangle is an axis aligned rectangle.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns rectangle with given sides.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns width multiplied by height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
