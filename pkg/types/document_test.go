package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceMap_PreservesDocumentOrder(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{
		"references": {
			"doc://c": {"title": "C"},
			"doc://a": {"title": "A"},
			"doc://b": {"title": "B"}
		}
	}`), &doc))

	assert.Equal(t, []string{"doc://c", "doc://a", "doc://b"}, doc.References.IDs())
	assert.Equal(t, 3, doc.References.Len())

	ref, ok := doc.References.Get("doc://a")
	require.True(t, ok)
	assert.Equal(t, "A", ref.Title)
	assert.Equal(t, "doc://a", ref.Identifier, "identifier falls back to the map key")
}

func TestReferenceMap_NullAndMissing(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"references": null}`), &doc))
	assert.Equal(t, 0, doc.References.Len())

	var bare Document
	require.NoError(t, json.Unmarshal([]byte(`{}`), &bare))
	_, ok := bare.References.Get("doc://a")
	assert.False(t, ok)
}

func TestReferenceMap_RejectsNonObject(t *testing.T) {
	var doc Document
	err := json.Unmarshal([]byte(`{"references": [1, 2]}`), &doc)
	require.Error(t, err)
}

func TestTechnologyIndex_OrderAndFrameworks(t *testing.T) {
	var index TechnologyIndex
	require.NoError(t, json.Unmarshal([]byte(`{
		"references": {
			"doc://notes": {"title": "Release Notes", "kind": "article", "role": "article"},
			"doc://uikit": {"title": "UIKit", "kind": "symbol", "role": "collection"},
			"doc://swiftui": {"title": "SwiftUI", "kind": "symbol", "role": "collection"}
		}
	}`), &index))

	techs := index.Technologies()
	require.Len(t, techs, 3)
	assert.Equal(t, "Release Notes", techs[0].Title)

	frameworks := index.Frameworks()
	require.Len(t, frameworks, 2)
	assert.Equal(t, "UIKit", frameworks[0].Title)
	assert.Equal(t, "SwiftUI", frameworks[1].Title)
}

func TestTechnologyIndex_EmptyDocument(t *testing.T) {
	var index TechnologyIndex
	require.NoError(t, json.Unmarshal([]byte(`{}`), &index))
	assert.Empty(t, index.Technologies())
	assert.Empty(t, index.Frameworks())
}

func TestFlattenAbstract(t *testing.T) {
	assert.Equal(t, "", FlattenAbstract(nil))
	assert.Equal(t, "A view that renders text.", FlattenAbstract([]TextFragment{
		{Type: "text", Text: "A view that renders "},
		{Type: "codeVoice", Text: "text."},
	}))
	assert.Equal(t, "trimmed", FlattenAbstract([]TextFragment{{Text: "  trimmed  "}}))
}

func TestFormatPlatforms(t *testing.T) {
	assert.Equal(t, "All platforms", FormatPlatforms(nil))
	assert.Equal(t, "All platforms", FormatPlatforms([]Platform{{IntroducedAt: "1.0"}}),
		"nameless entries do not count as platform data")

	assert.Equal(t, "iOS 13.0+, macOS 10.15+ (Beta)", FormatPlatforms([]Platform{
		{Name: "iOS", IntroducedAt: "13.0"},
		{Name: "macOS", IntroducedAt: "10.15", Beta: true},
	}))
	assert.Equal(t, "visionOS", FormatPlatforms([]Platform{{Name: "visionOS"}}))
}

func TestSearchResult_Validate(t *testing.T) {
	ok := SearchResult{Title: "UIView", Framework: "UIKit"}
	assert.NoError(t, ok.Validate())

	missingTitle := SearchResult{Framework: "UIKit"}
	assert.ErrorIs(t, missingTitle.Validate(), ErrMissingTitle)

	missingFramework := SearchResult{Title: "UIView"}
	assert.ErrorIs(t, missingFramework.Validate(), ErrMissingFramework)
}

func TestFetchError(t *testing.T) {
	err := &FetchError{Resource: "UIKit", URL: "https://example.com/uikit.json", Err: ErrNotFound}
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "UIKit")
	assert.Contains(t, err.Error(), "uikit.json")
}
