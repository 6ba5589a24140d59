package swagger

import "github.com/cgrand/ring-swagger/schema"

// APIInfo is the service-level metadata rendered into the resource listing.
type APIInfo struct {
	APIVersion        string
	Title             string
	Description       string
	TermsOfServiceURL string
	Contact           string
	License           string
	LicenseURL        string
}

// Route is the metadata a routing collaborator supplies for one endpoint.
// Return is the response schema (nil means void); Nickname, Summary and Notes
// are optional.
type Route struct {
	Method     string
	URI        string
	Parameters []ParameterSpec
	Return     schema.Node
	Summary    string
	Notes      string
	Nickname   string
}

// APIGroup is one named group of routes, listed as a single api in the
// resource listing and rendered as one api declaration.
type APIGroup struct {
	Name        string
	Description string
	Routes      []Route
}
