package views

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/rench/blog/articles"
	"github.com/rench/blog/components"
	"github.com/rench/blog/sitemeta"
)

func testMeta() sitemeta.Metadata {
	return sitemeta.Metadata{
		Title:    "Rench's Blog",
		Language: "en-us",
		LinkedIn: "https://www.linkedin.com/in/rench",
		Twitter:  "https://twitter.com/rench",
		CTFtime:  "https://ctftime.org/user/rench",
	}
}

func withAvatar() Primitives {
	return KitPrimitives(components.NewKit(components.FSResolver{
		FS:     fstest.MapFS{"images/avatar.png": &fstest.MapFile{Data: []byte("png")}},
		Prefix: "/static/",
	}))
}

func withoutAvatar() Primitives {
	return KitPrimitives(components.NewKit(components.FSResolver{FS: fstest.MapFS{}, Prefix: "/static/"}))
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func parse(t *testing.T, c templ.Component) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(renderString(t, c)))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func isElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	for _, t := range findAll(n, func(n *html.Node) bool { return n.Type == html.TextNode }) {
		sb.WriteString(t.Data)
	}
	return sb.String()
}

type socialLink struct {
	kind     string
	href     string
	hasHref  bool
	svgClass string
}

func only(t *testing.T, doc *html.Node, tag string) *html.Node {
	t.Helper()
	nodes := findAll(doc, isElement(tag))
	require.Len(t, nodes, 1)
	return nodes[0]
}

// socialLinks returns the anchors carrying a screen reader label, in document order.
func socialLinks(t *testing.T, doc *html.Node) []socialLink {
	t.Helper()
	var out []socialLink
	for _, a := range findAll(doc, isElement("a")) {
		var label *html.Node
		for c := a.FirstChild; c != nil; c = c.NextSibling {
			if class, _ := attr(c, "class"); c.Type == html.ElementNode && c.Data == "span" && class == "sr-only" {
				label = c
			}
		}
		if label == nil {
			continue
		}
		svgs := findAll(a, isElement("svg"))
		require.Len(t, svgs, 1)
		href, ok := attr(a, "href")
		class, _ := attr(svgs[0], "class")
		out = append(out, socialLink{kind: textOf(label), href: href, hasHref: ok, svgClass: class})
	}
	return out
}

func TestHomePage_SocialLinksFollowMetadata(t *testing.T) {
	meta := testMeta()
	links := socialLinks(t, only(t, parse(t, HomePage(meta, nil, withAvatar())), "main"))

	require.Len(t, links, 3)
	assert.Equal(t, "linkedin", links[0].kind)
	assert.Equal(t, meta.LinkedIn, links[0].href)
	assert.Equal(t, "twitter", links[1].kind)
	assert.Equal(t, meta.Twitter, links[1].href)
	assert.Equal(t, "ctftime", links[2].kind)
	assert.Equal(t, meta.CTFtime, links[2].href)
}

func TestHomePage_AlwaysContainsGreetingAndTagline(t *testing.T) {
	for name, meta := range map[string]sitemeta.Metadata{
		"configured": testMeta(),
		"empty":      {},
	} {
		t.Run(name, func(t *testing.T) {
			doc := parse(t, HomePage(meta, nil, withAvatar()))

			h1 := findAll(doc, isElement("h1"))
			require.Len(t, h1, 1)
			assert.Equal(t, "Hey! 👋, I'm Rench.", textOf(h1[0]))
			assert.Contains(t, textOf(doc), "I'm a CTF player and cybersecurity enthusiast.")
		})
	}
}

func TestHomePage_AvatarImage(t *testing.T) {
	doc := parse(t, HomePage(testMeta(), nil, withAvatar()))

	imgs := findAll(doc, isElement("img"))
	require.Len(t, imgs, 1)
	src, _ := attr(imgs[0], "src")
	assert.Equal(t, "/static/images/avatar.png", src)
	alt, _ := attr(imgs[0], "alt")
	assert.Equal(t, "User Avatar", alt)
}

func TestHomePage_AvatarFallbackWhenImageUnavailable(t *testing.T) {
	doc := parse(t, HomePage(testMeta(), nil, withoutAvatar()))

	assert.Empty(t, findAll(doc, isElement("img")))

	fallback := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "span" && textOf(n) == "PD"
	})
	require.NotEmpty(t, fallback)
	_, hidden := attr(fallback[len(fallback)-1], "hidden")
	assert.False(t, hidden)
}

func TestHomePage_EmptyLinkedInRendersEmptyDestination(t *testing.T) {
	meta := testMeta()
	meta.LinkedIn = ""

	links := socialLinks(t, only(t, parse(t, HomePage(meta, nil, withAvatar())), "main"))

	require.Len(t, links, 3)
	assert.True(t, links[0].hasHref)
	assert.Empty(t, links[0].href)
	assert.Equal(t, meta.Twitter, links[1].href)
}

func TestHomePage_UniformIconSize(t *testing.T) {
	links := socialLinks(t, only(t, parse(t, HomePage(testMeta(), nil, withAvatar())), "main"))

	require.Len(t, links, 3)
	for _, l := range links {
		assert.Equal(t, links[0].svgClass, l.svgClass)
		assert.Contains(t, l.svgClass, "h-10 w-10")
	}
}

func TestHomePage_Deterministic(t *testing.T) {
	meta := testMeta()
	prims := withAvatar()

	assert.Equal(t,
		renderString(t, HomePage(meta, nil, prims)),
		renderString(t, HomePage(meta, nil, prims)),
	)
}

func TestHomePage_IgnoresPosts(t *testing.T) {
	meta := testMeta()
	prims := withAvatar()

	assert.Equal(t,
		renderString(t, HomePage(meta, nil, prims)),
		renderString(t, HomePage(meta, articles.Builtin, prims)),
	)
}

type recordingSocial struct {
	calls []string
}

func (r *recordingSocial) SocialIcon(kind components.SocialKind, href string, size int) g.Node {
	r.calls = append(r.calls, string(kind)+"|"+href+"|"+strconv.Itoa(size))
	return nil
}

func TestHomePage_UsesInjectedPrimitives(t *testing.T) {
	rec := &recordingSocial{}
	prims := withAvatar()
	prims.Social = rec

	renderString(t, HomePage(testMeta(), nil, prims))

	assert.Equal(t, []string{
		"linkedin|https://www.linkedin.com/in/rench|10",
		"twitter|https://twitter.com/rench|10",
		"ctftime|https://ctftime.org/user/rench|10",
	}, rec.calls)
}

func TestHomePage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := HomePage(testMeta(), nil, withAvatar()).Render(ctx, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLayout_UsesMetadata(t *testing.T) {
	meta := testMeta()
	meta.Description = "CTF writeups"

	doc := parse(t, HomePage(meta, nil, withAvatar()))

	htmlEl := findAll(doc, isElement("html"))
	require.Len(t, htmlEl, 1)
	lang, _ := attr(htmlEl[0], "lang")
	assert.Equal(t, "en", lang)

	titles := findAll(doc, isElement("title"))
	require.NotEmpty(t, titles)
	assert.Equal(t, "Rench's Blog", textOf(titles[0]))
	assert.Contains(t, renderString(t, HomePage(meta, nil, withAvatar())), `content="CTF writeups"`)
}

func TestArticles(t *testing.T) {
	page := articles.Page{
		Items: []articles.Article{{
			ID:          7,
			Name:        "Heap notes",
			URL:         articles.URLFor(7),
			Description: "tcache",
			PublishedAt: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
		}},
		Number:  2,
		HasNext: true,
	}

	out := renderString(t, Articles(testMeta(), withAvatar(), page))

	assert.Contains(t, out, `href="/p/public/articles/7"`)
	assert.Contains(t, out, "Heap notes")
	assert.Contains(t, out, "March 2, 2025")
	assert.Contains(t, out, `href="/p/public/articles?page=1"`)
	assert.Contains(t, out, `href="/p/public/articles?page=3"`)
	assert.Contains(t, out, "<title>Articles | Rench&#39;s Blog</title>")
}

func TestArticles_Empty(t *testing.T) {
	out := renderString(t, Articles(testMeta(), withAvatar(), articles.Page{Number: 1}))

	assert.Contains(t, out, "No articles found.")
	assert.NotContains(t, out, "?page=")
}

func TestArticleDetails(t *testing.T) {
	a := articles.Builtin[0]
	out := renderString(t, ArticleDetails(testMeta(), withAvatar(), a))

	assert.Contains(t, out, a.Name)
	assert.Contains(t, out, "September 14, 2025")
}

func TestNotFoundViews(t *testing.T) {
	assert.Contains(t, renderString(t, NotFound(testMeta(), withAvatar())), "404")
	assert.Contains(t, renderString(t, ArticleNotFound(testMeta(), withAvatar())), "This article does not exist.")
}

func TestLayout_FooterLinks(t *testing.T) {
	meta := testMeta()
	meta.GitHub = "https://github.com/rench"
	meta.Email = "rench@example.com"
	meta.SiteRepo = "https://github.com/rench/blog"

	doc := parse(t, HomePage(meta, nil, withAvatar()))

	assert.Len(t, socialLinks(t, only(t, doc, "main")), 3)

	links := socialLinks(t, only(t, doc, "footer"))
	require.Len(t, links, 2)
	assert.Equal(t, "github", links[0].kind)
	assert.Equal(t, meta.GitHub, links[0].href)
	assert.Equal(t, "mail", links[1].kind)
	assert.Equal(t, "mailto:rench@example.com", links[1].href)
	assert.Contains(t, links[0].svgClass, "h-6 w-6")
	assert.Contains(t, renderString(t, Articles(meta, withAvatar(), articles.Page{Number: 1})), `href="https://github.com/rench/blog"`)
}

func TestLayout_FooterSkipsEmptyLinks(t *testing.T) {
	rec := &recordingSocial{}
	prims := withAvatar()
	prims.Social = rec

	renderString(t, NotFound(testMeta(), prims))
	assert.Empty(t, rec.calls)

	meta := testMeta()
	meta.Email = "rench@example.com"
	renderString(t, NotFound(meta, prims))
	assert.Equal(t, []string{"mail|mailto:rench@example.com|6"}, rec.calls)
}
