// Package components renders the small UI primitives the views are built from.
package components

// Kit is the default gomponents-backed set of primitives.
type Kit struct {
	// Assets decides whether an avatar image is rendered at all. A nil
	// resolver leaves the decision to the browser.
	Assets AssetResolver
}

func NewKit(assets AssetResolver) Kit {
	return Kit{Assets: assets}
}
