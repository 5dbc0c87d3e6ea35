package codesearch

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/cjk"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping maps code table entries:
//   - name: Japanese display names, bigram analysed (cjk folds full-width
//     Latin so "NHK" matches "ＮＨＫ")
//   - aliases: English and romanised spellings with stemming
//   - code, dimension, major: exact keywords
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()

	name := bleve.NewTextFieldMapping()
	name.Analyzer = cjk.AnalyzerName
	name.Store = true
	docMapping.AddFieldMappingsAt("name", name)

	aliases := bleve.NewTextFieldMapping()
	aliases.Analyzer = en.AnalyzerName
	docMapping.AddFieldMappingsAt("aliases", aliases)

	for _, field := range []string{"code", "dimension", "major"} {
		kw := bleve.NewTextFieldMapping()
		kw.Analyzer = keyword.Name
		kw.Store = field != "major"
		docMapping.AddFieldMappingsAt(field, kw)
	}

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
