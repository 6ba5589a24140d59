package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countryModel() *Model {
	return NewModel("Country",
		Req("code", Enum{Values: []any{"fi", "sv"}}),
		Req("name", String),
	)
}

func customerModel() *Model {
	return NewModel("Customer",
		Req("id", Long),
		Req("name", String),
		Opt("address", Optional{Inner: &Model{Fields: []Field{
			Req("street", String),
			Req("country", countryModel()),
		}}}),
	)
}

func modelIDs(r *Registry) []string {
	var ids []string
	for _, m := range r.Models() {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestCollectModelsFindsNestedModels(t *testing.T) {
	reg, err := CollectModels(customerModel())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Customer", "Country", "CustomerAddress"}, modelIDs(reg))

	address, ok := reg.Resolve("CustomerAddress")
	require.True(t, ok)
	_, hasStreet := address.Field("street")
	assert.True(t, hasStreet)
}

func TestCollectModelsNamesAnonymousModelsAfterTheirField(t *testing.T) {
	order := NewModel("Order",
		Req("order-id", &Model{Fields: []Field{Req("value", String)}}),
	)

	reg, err := CollectModels(order)
	require.NoError(t, err)
	assert.True(t, reg.Contains("OrderOrderId"))
}

func TestCollectModelsIsOrderIndependent(t *testing.T) {
	first, err := CollectModels(customerModel(), countryModel())
	require.NoError(t, err)
	second, err := CollectModels(countryModel(), customerModel())
	require.NoError(t, err)

	assert.ElementsMatch(t, modelIDs(first), modelIDs(second))
}

func TestCollectModelsDeduplicatesSharedModels(t *testing.T) {
	country := countryModel()
	shipping := NewModel("Shipping", Req("country", country))
	billing := NewModel("Billing", Req("country", country))

	reg, err := CollectModels(shipping, billing)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Shipping", "Billing", "Country"}, modelIDs(reg))
}

func TestCollectModelsRecursesThroughContainers(t *testing.T) {
	tag := NewModel("Tag", Req("name", String))
	pet := NewModel("Pet",
		Req("tags", Set{Elem: tag}),
		Opt("aliases", Sequence{Elem: String}),
		Opt("owner", Union{Alternatives: []Node{countryModel(), String}}),
	)

	reg, err := CollectModels(pet)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Pet", "Tag", "Country"}, modelIDs(reg))
}

func TestCollectModelsDoesNotExpandRecursiveReferences(t *testing.T) {
	category := NewModel("Category",
		Req("name", String),
		Opt("parent", Recursive{TargetID: "Category"}),
	)

	reg, err := CollectModels(category)
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Contains("Category"))
}

func TestCollectModelsRejectsConflictingDefinitions(t *testing.T) {
	a := NewModel("Thing", Req("x", String))
	b := NewModel("Thing", Req("x", Long))

	_, err := CollectModels(a, b)
	assert.ErrorContains(t, err, "conflicting definitions")
}

func TestCollectModelsRejectsAnonymousRoot(t *testing.T) {
	_, err := CollectModels(&Model{Fields: []Field{Req("x", String)}})
	assert.Error(t, err)
}
