package swagger

import (
	"fmt"
	"strings"

	"github.com/cgrand/ring-swagger/schema"
)

// SwaggerVersion is the only document version this package produces.
const SwaggerVersion = "1.2"

var jsonMediaTypes = []string{"application/json"}

// Listing is a Swagger 1.2 resource listing document.
type Listing struct {
	SwaggerVersion string       `json:"swaggerVersion"`
	APIVersion     string       `json:"apiVersion"`
	Info           Info         `json:"info"`
	APIs           []ListingAPI `json:"apis"`
}

// Info is the info block of a resource listing.
type Info struct {
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	TermsOfServiceURL string `json:"termsOfServiceUrl,omitempty"`
	Contact           string `json:"contact,omitempty"`
	License           string `json:"license,omitempty"`
	LicenseURL        string `json:"licenseUrl,omitempty"`
}

// ListingAPI is one api entry of a resource listing.
type ListingAPI struct {
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Declaration is a Swagger 1.2 api declaration document.
type Declaration struct {
	SwaggerVersion string               `json:"swaggerVersion"`
	APIVersion     string               `json:"apiVersion"`
	BasePath       string               `json:"basePath"`
	ResourcePath   string               `json:"resourcePath"`
	Produces       []string             `json:"produces"`
	Consumes       []string             `json:"consumes"`
	Models         map[string]ModelSpec `json:"models"`
	APIs           []DeclarationAPI     `json:"apis"`
}

// DeclarationAPI is one api entry of a declaration: a path with its
// operations.
type DeclarationAPI struct {
	Path       string      `json:"path"`
	Operations []Operation `json:"operations"`
}

// Operation describes one operation on a path. The embedded JSONSchema holds
// the return type descriptor inline (type/format/items or $ref).
type Operation struct {
	JSONSchema
	Method           string            `json:"method"`
	Summary          string            `json:"summary"`
	Notes            string            `json:"notes"`
	Nickname         string            `json:"nickname"`
	ResponseMessages []ResponseMessage `json:"responseMessages"`
	Parameters       []Parameter       `json:"parameters"`
}

// ResponseMessage is a status code with its meaning. The builder emits an
// empty (never null) responseMessages list; callers document codes on top.
type ResponseMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Builder assembles listing and declaration documents from route metadata.
// The zero value is not usable; construct with NewBuilder.
type Builder struct {
	dispatcher *Dispatcher
}

// NewBuilder returns a builder using the built-in dispatcher.
func NewBuilder() *Builder {
	return &Builder{dispatcher: NewDispatcher()}
}

// NewBuilderWith returns a builder classifying through d, which may carry
// caller registrations.
func NewBuilderWith(d *Dispatcher) *Builder {
	return &Builder{dispatcher: d}
}

// Listing builds the resource listing: one api entry per group, in the given
// order.
func (b *Builder) Listing(info APIInfo, groups []APIGroup) Listing {
	apis := make([]ListingAPI, 0, len(groups))
	for _, g := range groups {
		apis = append(apis, ListingAPI{Path: "/" + g.Name, Description: g.Description})
	}
	return Listing{
		SwaggerVersion: SwaggerVersion,
		APIVersion:     info.APIVersion,
		Info: Info{
			Title:             info.Title,
			Description:       info.Description,
			TermsOfServiceURL: info.TermsOfServiceURL,
			Contact:           info.Contact,
			License:           info.License,
			LicenseURL:        info.LicenseURL,
		},
		APIs: apis,
	}
}

// Declaration builds the api declaration for the named group. An unknown name
// is not an error: the result is nil, letting the caller answer "not found".
func (b *Builder) Declaration(info APIInfo, groups []APIGroup, name, basePath string) (*Declaration, error) {
	group, ok := findGroup(groups, name)
	if !ok {
		return nil, nil
	}

	registry, err := schema.CollectModels(modelRoots(group)...)
	if err != nil {
		return nil, fmt.Errorf("collecting models for api %q: %w", name, err)
	}
	d := b.dispatcher.WithRegistry(registry)

	models := make(map[string]ModelSpec, registry.Len())
	for _, m := range registry.Models() {
		spec, err := d.TransformModel(m)
		if err != nil {
			return nil, err
		}
		models[spec.ID] = spec
	}

	apis := make([]DeclarationAPI, 0, len(group.Routes))
	for _, route := range group.Routes {
		op, err := d.operation(route)
		if err != nil {
			return nil, fmt.Errorf("building operation %s %s: %w", route.Method, route.URI, err)
		}
		apis = append(apis, DeclarationAPI{
			Path:       SwaggerPath(route.URI),
			Operations: []Operation{op},
		})
	}

	return &Declaration{
		SwaggerVersion: SwaggerVersion,
		APIVersion:     info.APIVersion,
		BasePath:       basePath,
		ResourcePath:   "",
		Produces:       jsonMediaTypes,
		Consumes:       jsonMediaTypes,
		Models:         models,
		APIs:           apis,
	}, nil
}

func (d *Dispatcher) operation(route Route) (Operation, error) {
	ret, err := d.ClassifyReturn(route.Return)
	if err != nil {
		return Operation{}, err
	}
	params, err := d.ConvertParameters(route.Parameters)
	if err != nil {
		return Operation{}, err
	}
	nickname := route.Nickname
	if nickname == "" {
		nickname = Nickname(route.Method, route.URI)
	}
	return Operation{
		JSONSchema:       ret,
		Method:           strings.ToUpper(route.Method),
		Summary:          route.Summary,
		Notes:            route.Notes,
		Nickname:         nickname,
		ResponseMessages: []ResponseMessage{},
		Parameters:       params,
	}, nil
}

func findGroup(groups []APIGroup, name string) (APIGroup, bool) {
	for _, g := range groups {
		if g.Name == name {
			return g, true
		}
	}
	return APIGroup{}, false
}

// modelRoots gathers the schema roots whose reachable models belong in the
// declaration: every route's return node and every body parameter's schema.
func modelRoots(group APIGroup) []schema.Node {
	var roots []schema.Node
	for _, route := range group.Routes {
		if route.Return != nil {
			roots = append(roots, route.Return)
		}
		for _, ps := range route.Parameters {
			if ps.Location == InBody && ps.Schema != nil {
				roots = append(roots, ps.Schema)
			}
		}
	}
	return roots
}
