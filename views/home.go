package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rench/blog/articles"
	"github.com/rench/blog/components"
	"github.com/rench/blog/sitemeta"
)

const (
	AvatarPath     = "/static/images/avatar.png"
	avatarAlt      = "User Avatar"
	avatarFallback = "PD"

	Greeting = "Hey! 👋, I'm Rench."
	Tagline  = "I'm a CTF player and cybersecurity enthusiast."

	socialIconSize = 10
)

type AvatarRenderer interface {
	Avatar(p components.AvatarProps) g.Node
}

type SocialIconRenderer interface {
	SocialIcon(kind components.SocialKind, href string, size int) g.Node
}

// Primitives are the rendering backends the home page is composed from.
type Primitives struct {
	Avatar AvatarRenderer
	Social SocialIconRenderer
}

// KitPrimitives backs both primitives with the same components.Kit.
func KitPrimitives(kit components.Kit) Primitives {
	return Primitives{Avatar: kit, Social: kit}
}

// HomePage renders the landing page. posts is accepted so the caller does not
// change once the page lists recent articles; it is not read.
func HomePage(meta sitemeta.Metadata, posts []articles.Article, prims Primitives) templ.Component {
	return component(Layout(meta, prims.Social, "", HomeContent(meta, posts, prims)))
}

func HomeContent(meta sitemeta.Metadata, _ []articles.Article, prims Primitives) g.Node {
	return Div(
		Class("-mt-32 flex h-screen items-center justify-center"),
		Div(
			Class("flex flex-col items-center gap-6 md:flex-row md:gap-12"),
			prims.Avatar.Avatar(components.AvatarProps{
				Src:      AvatarPath,
				Alt:      avatarAlt,
				Fallback: avatarFallback,
				Class:    "h-48 w-48 md:h-64 md:w-64",
			}),
			Div(
				Class("grid gap-2 text-2xl md:gap-4 md:text-3xl"),
				H1(Class("text-center text-4xl font-bold md:text-left md:text-6xl"), g.Text(Greeting)),
				P(Class("text-center text-gray-500 dark:text-gray-400 md:text-left"), g.Text(Tagline)),
				Div(
					Class("mt-4 flex justify-center gap-4 md:justify-start md:gap-8"),
					prims.Social.SocialIcon(components.LinkedIn, meta.LinkedIn, socialIconSize),
					prims.Social.SocialIcon(components.Twitter, meta.Twitter, socialIconSize),
					prims.Social.SocialIcon(components.CTFtime, meta.CTFtime, socialIconSize),
				),
			),
		),
	)
}
