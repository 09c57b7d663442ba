// Package urls holds the project links printed by the form, the CLI and the
// generated config file, so they change in one place.
//
// Usage:
//
//	import "github.com/muurk/profileform/internal/urls"
//
//	fmt.Printf("Report a problem: %s\n", urls.Issues)
package urls
