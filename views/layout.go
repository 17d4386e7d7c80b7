package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rench/blog/components"
	"github.com/rench/blog/sitemeta"
)

const (
	HomePath     = "/p/public/home"
	ArticlesPath = "/p/public/articles"
	stylesPath   = "/static/css/styles.css"

	footerIconSize = 6
)

func pageTitle(meta sitemeta.Metadata, title string) string {
	if title == "" {
		return meta.Title
	}
	return title + " | " + meta.Title
}

// Layout wraps body in the site chrome. The footer links are drawn with social.
func Layout(meta sitemeta.Metadata, social SocialIconRenderer, title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang(meta.Lang()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(pageTitle(meta, title))),
				g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
				g.If(meta.Author != "", Meta(Name("author"), Content(meta.Author))),
				Link(Rel("stylesheet"), Href(stylesPath)),
			),
			Body(
				Class("bg-white text-black antialiased dark:bg-gray-950 dark:text-white"),
				Header(
					Class("flex items-center justify-between py-10 px-4 sm:px-6 xl:px-0 mx-auto max-w-5xl"),
					A(Href(HomePath), Class("text-2xl font-semibold"), g.Text(headerTitle(meta))),
					Nav(
						Class("flex items-center gap-4"),
						navLink(HomePath, "Home"),
						navLink(ArticlesPath, "Articles"),
					),
				),
				Main(Class("mx-auto max-w-3xl px-4 sm:px-6 xl:max-w-5xl xl:px-0"), g.Group(body)),
				footer(meta, social),
			),
		),
	)
}

func headerTitle(meta sitemeta.Metadata) string {
	if meta.HeaderTitle != "" {
		return meta.HeaderTitle
	}
	return meta.Title
}

func navLink(href, label string) g.Node {
	return A(Href(href), Class("font-medium text-gray-900 hover:text-primary-500 dark:text-gray-100"), g.Text(label))
}

func footer(meta sitemeta.Metadata, social SocialIconRenderer) g.Node {
	var icons []g.Node
	if meta.GitHub != "" {
		icons = append(icons, social.SocialIcon(components.GitHub, meta.GitHub, footerIconSize))
	}
	if meta.Email != "" {
		icons = append(icons, social.SocialIcon(components.Mail, "mailto:"+meta.Email, footerIconSize))
	}

	return Footer(
		Class("mt-16 flex flex-col items-center gap-3 pb-8 text-sm text-gray-500 dark:text-gray-400"),
		g.If(len(icons) > 0, Div(Class("flex gap-4"), g.Group(icons))),
		Div(
			Class("flex gap-2"),
			g.If(meta.Author != "", Span(g.Text(meta.Author))),
			g.If(meta.SiteRepo != "", A(Href(meta.SiteRepo), Target("_blank"), Rel("noopener noreferrer"), g.Text("Source"))),
		),
	)
}
