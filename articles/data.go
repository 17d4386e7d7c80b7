package articles

import "time"

var (
	ZeroTrustHomelabID uint64 = 1417231583613554688
	PicoCTFWriteupID   uint64 = 1418336861478195200
)

func newArticle(id uint64, name, description string, publishedAt time.Time) Article {
	return Article{
		ID:          id,
		URL:         URLFor(id),
		Name:        name,
		Description: description,
		PublishedAt: publishedAt,
	}
}

// Builtin is served whenever the database is unavailable. The migrations seed
// the same rows.
var Builtin = []Article{
	newArticle(
		ZeroTrustHomelabID,
		"Zero trust homelab",
		"My homelab setup using Terraform, Helm, Cloudflare, Tailscale and more...",
		time.Date(2025, time.September, 14, 0, 0, 0, 0, time.UTC),
	),
	newArticle(
		PicoCTFWriteupID,
		"picoCTF web exploitation writeups",
		"Notes on the web challenges from this year's picoCTF.",
		time.Date(2025, time.September, 17, 0, 0, 0, 0, time.UTC),
	),
}

func Default() *Catalog {
	return NewCatalog(Builtin...)
}
