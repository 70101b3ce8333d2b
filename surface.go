package offscreen

import "image"

// Surface is a drawable region whose ownership moves between execution
// contexts. Exactly one context holds a live reference at a time: once a
// surface has been posted through a [Port] the sending side must not touch
// it again, and implementations report an error if it does.
type Surface interface {
	// Size reports the surface extent in device pixels.
	Size() Size

	// Present replaces the surface contents with img. The image is expected
	// to match the surface size; callers scale beforehand if it does not.
	Present(img image.Image) error
}
