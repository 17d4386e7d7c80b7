package views

import (
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rench/blog/articles"
	"github.com/rench/blog/sitemeta"
)

const dateLayout = "January 2, 2006"

func Articles(meta sitemeta.Metadata, prims Primitives, page articles.Page) templ.Component {
	return component(Layout(meta, prims.Social, "Articles",
		Div(
			Class("divide-y divide-gray-200 dark:divide-gray-700"),
			H1(Class("pb-8 pt-6 text-3xl font-extrabold tracking-tight md:text-5xl"), g.Text("Articles")),
			g.If(len(page.Items) == 0, P(Class("py-6 text-gray-500"), g.Text("No articles found."))),
			Ul(
				g.Map(page.Items, func(a articles.Article) g.Node {
					return Li(
						Class("py-6"),
						g.El("time", g.Attr("datetime", a.PublishedAt.Format("2006-01-02")), Class("text-sm text-gray-500"), g.Text(a.PublishedAt.Format(dateLayout))),
						H2(Class("text-2xl font-bold"), A(Href(a.URL), g.Text(a.Name))),
						P(Class("text-gray-500 dark:text-gray-400"), g.Text(a.Description)),
					)
				}),
			),
			pagination(page),
		),
	))
}

func pagination(page articles.Page) g.Node {
	if page.Number <= 1 && !page.HasNext {
		return nil
	}
	return Nav(
		Class("flex justify-between pt-6"),
		g.If(page.Number > 1, A(Href(pageURL(page.Number-1)), Rel("prev"), g.Text("Previous"))),
		g.If(page.HasNext, A(Href(pageURL(page.Number+1)), Rel("next"), g.Text("Next"))),
	)
}

func pageURL(n int) string {
	return ArticlesPath + "?page=" + strconv.Itoa(n)
}

func ArticleDetails(meta sitemeta.Metadata, prims Primitives, a articles.Article) templ.Component {
	return component(Layout(meta, prims.Social, a.Name,
		Div(
			Class("pt-6"),
			g.El("time", g.Attr("datetime", a.PublishedAt.Format("2006-01-02")), Class("text-sm text-gray-500"), g.Text(a.PublishedAt.Format(dateLayout))),
			H1(Class("text-3xl font-extrabold tracking-tight md:text-5xl"), g.Text(a.Name)),
			P(Class("pt-6 text-lg text-gray-500 dark:text-gray-400"), g.Text(a.Description)),
			A(Href(ArticlesPath), Class("mt-8 inline-block text-primary-500"), g.Text("← Back to articles")),
		),
	))
}

func ArticleNotFound(meta sitemeta.Metadata, prims Primitives) templ.Component {
	return component(Layout(meta, prims.Social, "Article not found", notFoundBody("This article does not exist.", ArticlesPath, "Back to articles")))
}

func NotFound(meta sitemeta.Metadata, prims Primitives) templ.Component {
	return component(Layout(meta, prims.Social, "Page not found", notFoundBody("Sorry, we couldn't find this page.", HomePath, "Back to homepage")))
}

func notFoundBody(msg, back, label string) g.Node {
	return Div(
		Class("flex flex-col items-center justify-center gap-4 pt-20 text-center"),
		H1(Class("text-6xl font-extrabold"), g.Text("404")),
		P(Class("text-xl"), g.Text(msg)),
		A(Href(back), Class("text-primary-500"), g.Text(label)),
	)
}
