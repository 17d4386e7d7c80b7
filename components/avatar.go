package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	avatarRootClass     = "relative flex shrink-0 overflow-hidden rounded-full"
	avatarImageClass    = "aspect-square h-full w-full object-cover"
	avatarFallbackClass = "flex h-full w-full items-center justify-center rounded-full bg-gray-100 text-4xl font-semibold dark:bg-gray-800"
)

// revealFallback swaps a broken image for the fallback sibling rendered after it.
const revealFallback = "this.nextElementSibling.hidden=false;this.remove()"

type AvatarProps struct {
	Src      string
	Alt      string
	Fallback string
	Class    string
}

// Avatar renders an image with a text fallback. When the image is known to
// be missing only the fallback is rendered; otherwise the fallback is kept
// hidden and shown by the browser if the image fails to load.
func (k Kit) Avatar(p AvatarProps) g.Node {
	root := cn(avatarRootClass, p.Class)

	if !k.available(p.Src) {
		return Span(Class(root),
			Span(Class(avatarFallbackClass), g.Text(p.Fallback)),
		)
	}

	return Span(Class(root),
		Img(
			Class(avatarImageClass),
			Src(p.Src),
			Alt(p.Alt),
			g.Attr("onerror", revealFallback),
		),
		Span(Class(avatarFallbackClass), g.Attr("hidden"), g.Text(p.Fallback)),
	)
}

func (k Kit) available(src string) bool {
	if src == "" {
		return false
	}
	if k.Assets == nil {
		return true
	}
	return k.Assets.Exists(src)
}
