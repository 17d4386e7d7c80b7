package components

import twmerge "github.com/Oudwins/tailwind-merge-go"

// cn merges tailwind class lists, later entries winning on conflicts.
func cn(classes ...string) string {
	return twmerge.Merge(classes...)
}
