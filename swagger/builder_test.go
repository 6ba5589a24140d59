package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgrand/ring-swagger/schema"
)

func testInfo() APIInfo {
	return APIInfo{
		APIVersion:  "1.0.0",
		Title:       "Test API",
		Description: "desc",
	}
}

func customerGroup() APIGroup {
	country := schema.NewModel("Country",
		schema.Req("code", schema.Enum{Values: []any{"fi", "sv"}}),
		schema.Req("name", schema.String),
	)
	customer := schema.NewModel("Customer",
		schema.Req("id", schema.Long),
		schema.Req("name", schema.String),
		schema.Opt("address", schema.Optional{Inner: &schema.Model{Fields: []schema.Field{
			schema.Req("street", schema.String),
			schema.Req("country", country),
		}}}),
	)
	return APIGroup{
		Name:        "customers",
		Description: "Customer operations",
		Routes: []Route{
			{
				Method:     "get",
				URI:        "/customers/:id",
				Return:     customer,
				Parameters: []ParameterSpec{*ImpliedPathParameters("/customers/:id")},
			},
			{
				Method:     "post",
				URI:        "/customers",
				Return:     customer,
				Parameters: []ParameterSpec{{Location: InBody, Schema: customer}},
			},
		},
	}
}

func TestListingContainsEveryGroup(t *testing.T) {
	groups := []APIGroup{
		{Name: "pets", Description: "Pets"},
		{Name: "store", Description: "Orders"},
	}

	listing := NewBuilder().Listing(testInfo(), groups)

	assert.Equal(t, "1.2", listing.SwaggerVersion)
	assert.Equal(t, "1.0.0", listing.APIVersion)
	assert.Equal(t, "Test API", listing.Info.Title)
	assert.Equal(t, []ListingAPI{
		{Path: "/pets", Description: "Pets"},
		{Path: "/store", Description: "Orders"},
	}, listing.APIs)
}

func TestListingJSONShape(t *testing.T) {
	listing := NewBuilder().Listing(testInfo(), []APIGroup{{Name: "ping", Description: "Ping"}})

	body, err := Marshal(listing)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"swaggerVersion": "1.2",
		"apiVersion": "1.0.0",
		"info": {"title": "Test API", "description": "desc"},
		"apis": [{"path": "/ping", "description": "Ping"}]
	}`, string(body))
}

func TestDeclarationAbsentForUnknownGroup(t *testing.T) {
	decl, err := NewBuilder().Declaration(testInfo(), []APIGroup{customerGroup()}, "nope", "/api")
	require.NoError(t, err)
	assert.Nil(t, decl)
}

func TestDeclarationCollectsAndTransformsModels(t *testing.T) {
	decl, err := NewBuilder().Declaration(testInfo(), []APIGroup{customerGroup()}, "customers", "/api")
	require.NoError(t, err)
	require.NotNil(t, decl)

	require.Len(t, decl.Models, 3)
	require.Contains(t, decl.Models, "Customer")
	require.Contains(t, decl.Models, "Country")
	require.Contains(t, decl.Models, "CustomerAddress")

	customer := decl.Models["Customer"]
	assert.Equal(t, Property{"$ref": "CustomerAddress"}, customer.Properties["address"])
	assert.Equal(t, []string{"id", "name"}, customer.Required)

	country := decl.Models["Country"]
	assert.Equal(t, Property{"type": "string", "enum": []any{"fi", "sv"}}, country.Properties["code"])

	address := decl.Models["CustomerAddress"]
	assert.Equal(t, []string{"street", "country"}, address.Required)
}

func TestDeclarationOperations(t *testing.T) {
	decl, err := NewBuilder().Declaration(testInfo(), []APIGroup{customerGroup()}, "customers", "/api")
	require.NoError(t, err)
	require.NotNil(t, decl)

	assert.Equal(t, "/api", decl.BasePath)
	assert.Equal(t, "", decl.ResourcePath)
	assert.Equal(t, []string{"application/json"}, decl.Produces)
	assert.Equal(t, []string{"application/json"}, decl.Consumes)
	require.Len(t, decl.APIs, 2)

	get := decl.APIs[0]
	assert.Equal(t, "/customers/{id}", get.Path)
	require.Len(t, get.Operations, 1)

	op := get.Operations[0]
	assert.Equal(t, "GET", op.Method)
	assert.Equal(t, "Customer", op.Type)
	assert.Equal(t, "getCustomersById", op.Nickname)
	assert.Equal(t, "", op.Summary)
	assert.Equal(t, "", op.Notes)
	assert.NotNil(t, op.ResponseMessages)
	assert.Empty(t, op.ResponseMessages)

	post := decl.APIs[1].Operations[0]
	assert.Equal(t, "POST", post.Method)
	require.Len(t, post.Parameters, 1)
	assert.Equal(t, "customer", post.Parameters[0].Name)
	assert.Equal(t, InBody, post.Parameters[0].ParamType)
}

func TestDeclarationExplicitNicknameWins(t *testing.T) {
	group := APIGroup{
		Name: "pets",
		Routes: []Route{
			{Method: "get", URI: "/pets", Nickname: "listEveryPet"},
		},
	}

	decl, err := NewBuilder().Declaration(testInfo(), []APIGroup{group}, "pets", "/api")
	require.NoError(t, err)
	require.NotNil(t, decl)
	assert.Equal(t, "listEveryPet", decl.APIs[0].Operations[0].Nickname)
}

func TestDeclarationVoidReturn(t *testing.T) {
	group := APIGroup{
		Name: "pets",
		Routes: []Route{
			{Method: "delete", URI: "/pets/:id", Parameters: []ParameterSpec{*ImpliedPathParameters("/pets/:id")}},
		},
	}

	decl, err := NewBuilder().Declaration(testInfo(), []APIGroup{group}, "pets", "/api")
	require.NoError(t, err)
	require.NotNil(t, decl)
	assert.Equal(t, "void", decl.APIs[0].Operations[0].Type)
}

func TestDeclarationRecursiveModelStaysReference(t *testing.T) {
	category := schema.NewModel("Category",
		schema.Req("name", schema.String),
		schema.Opt("parent", schema.Recursive{TargetID: "Category"}),
	)
	group := APIGroup{
		Name:   "categories",
		Routes: []Route{{Method: "get", URI: "/categories/:id", Return: category}},
	}

	decl, err := NewBuilder().Declaration(testInfo(), []APIGroup{group}, "categories", "/api")
	require.NoError(t, err)
	require.NotNil(t, decl)

	// The self-referential model is collected exactly once and its parent
	// property is a reference, never an inline expansion.
	require.Len(t, decl.Models, 1)
	assert.Equal(t, Property{"$ref": "Category"}, decl.Models["Category"].Properties["parent"])
}

func TestDeclarationJSONShape(t *testing.T) {
	group := APIGroup{
		Name:        "ping",
		Description: "Ping",
		Routes: []Route{
			{Method: "get", URI: "/ping/:id", Parameters: []ParameterSpec{*ImpliedPathParameters("/ping/:id")}},
		},
	}

	decl, err := NewBuilder().Declaration(testInfo(), []APIGroup{group}, "ping", "http://localhost:8080/api")
	require.NoError(t, err)
	require.NotNil(t, decl)

	body, err := Marshal(decl)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"swaggerVersion": "1.2",
		"apiVersion": "1.0.0",
		"basePath": "http://localhost:8080/api",
		"resourcePath": "",
		"produces": ["application/json"],
		"consumes": ["application/json"],
		"models": {},
		"apis": [{
			"path": "/ping/{id}",
			"operations": [{
				"type": "void",
				"method": "GET",
				"summary": "",
				"notes": "",
				"nickname": "getPingById",
				"responseMessages": [],
				"parameters": [{
					"type": "string",
					"name": "id",
					"description": "",
					"required": true,
					"paramType": "path"
				}]
			}]
		}]
	}`, string(body))
}

func TestBuilderWithCustomDispatcher(t *testing.T) {
	d := NewDispatcher()
	d.RegisterNode(schema.Date, func(_ *Context, _ schema.Node) (JSONSchema, error) {
		return JSONSchema{Type: "string", Format: "full-date"}, nil
	})

	group := APIGroup{
		Name: "events",
		Routes: []Route{{
			Method: "get",
			URI:    "/events",
			Return: schema.NewModel("Event", schema.Req("day", schema.Date)),
		}},
	}

	decl, err := NewBuilderWith(d).Declaration(testInfo(), []APIGroup{group}, "events", "/api")
	require.NoError(t, err)
	require.NotNil(t, decl)
	assert.Equal(t, Property{"type": "string", "format": "full-date"}, decl.Models["Event"].Properties["day"])
}
