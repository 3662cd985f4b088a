package bleve

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/single"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/pkg/errors"
)

const AnalyzerKeywordLower = "keyword_lower"

func IndexMapping() *mapping.IndexMappingImpl {
	mapping := bleve.NewIndexMapping()

	// Single-token lowercase analysis keeps the whole raw text
	// addressable by case-insensitive wildcard queries.
	if err := mapping.AddCustomAnalyzer(AnalyzerKeywordLower, map[string]interface{}{
		"type":          custom.Name,
		"tokenizer":     single.Name,
		"token_filters": []string{lowercase.Name},
	}); err != nil {
		panic(errors.WithStack(err))
	}

	termMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = AnalyzerKeywordLower
	textFieldMapping.Store = true
	termMapping.AddFieldMappingsAt("text", textFieldMapping)

	pathFieldMapping := bleve.NewTextFieldMapping()
	pathFieldMapping.Analyzer = AnalyzerKeywordLower
	pathFieldMapping.Store = true
	termMapping.AddFieldMappingsAt("path", pathFieldMapping)

	mapping.DefaultMapping = termMapping

	return mapping
}
