package resolver

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &Failure{Kind: KindNotFound, Message: "resolver: no location found"}
	assert.Equal(t, "resolver: no location found", f.Error())
}

func TestFailure_Predicates(t *testing.T) {
	notFound := &Failure{Kind: KindNotFound, Message: "nope", Suggestions: []string{"add a city"}}
	parseErr := &Failure{Kind: KindParseError, Message: "empty"}

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(parseErr))
	assert.True(t, IsParseError(parseErr))
	assert.False(t, IsParseError(notFound))

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(assert.AnError))
}

func TestFailure_UnwrapsThroughWrapping(t *testing.T) {
	// Failures stay detectable after being wrapped upstream.
	wrapped := eris.Wrap(&Failure{Kind: KindNotFound, Message: "nope", Suggestions: []string{"hint"}}, "outer")
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, []string{"hint"}, SuggestionsFrom(wrapped))
}

func TestSuggestionsFrom_NonFailure(t *testing.T) {
	assert.Nil(t, SuggestionsFrom(assert.AnError))
	assert.Nil(t, SuggestionsFrom(nil))
}
