package tool

import (
	"embed"
	"encoding/json"
	"strings"
	"sync"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

//go:embed knowledge/*.json
var knowledgeFS embed.FS

type knowledgeDoc struct {
	FAQs []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"faqs"`
	Services []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"services"`
}

var knowledgeCategories = map[string]string{
	"ai_development": "knowledge/ai_development.json",
	"automation":     "knowledge/automation.json",
	"fullstack":      "knowledge/fullstack.json",
	"cybersecurity":  "knowledge/cybersecurity.json",
	"company":        "knowledge/company_info.json",
}

var (
	knowledgeOnce sync.Once
	knowledgeDocs map[string]knowledgeDoc
)

func loadKnowledge() map[string]knowledgeDoc {
	knowledgeOnce.Do(func() {
		knowledgeDocs = make(map[string]knowledgeDoc, len(knowledgeCategories))
		for category, path := range knowledgeCategories {
			raw, err := knowledgeFS.ReadFile(path)
			if err != nil {
				continue
			}
			var doc knowledgeDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				continue
			}
			knowledgeDocs[category] = doc
		}
	})
	return knowledgeDocs
}

type KnowledgeSearchOutput struct {
	Query   string   `json:"query"`
	Matches []string `json:"matches,omitempty"`
}

// SearchKnowledge scans the embedded knowledge base, optionally restricted to
// one category, and returns up to three matching snippets. A miss returns an
// empty result, not an error.
func SearchKnowledge(query, category string) KnowledgeSearchOutput {
	out := KnowledgeSearchOutput{Query: query}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return out
	}

	docs := loadKnowledge()
	categories := make([]string, 0, len(docs))
	if category != "" {
		if _, ok := docs[category]; ok {
			categories = append(categories, category)
		}
	}
	if len(categories) == 0 {
		for c := range knowledgeCategories {
			if _, ok := docs[c]; ok {
				categories = append(categories, c)
			}
		}
	}

	const maxMatches = 3
	for _, c := range categories {
		doc := docs[c]
		for _, faq := range doc.FAQs {
			if len(out.Matches) >= maxMatches {
				return out
			}
			if strings.Contains(strings.ToLower(faq.Question), needle) ||
				strings.Contains(strings.ToLower(faq.Answer), needle) {
				out.Matches = append(out.Matches, "Q: "+faq.Question+"\nA: "+faq.Answer)
			}
		}
		for _, svc := range doc.Services {
			if len(out.Matches) >= maxMatches {
				return out
			}
			if strings.Contains(strings.ToLower(svc.Description), needle) {
				out.Matches = append(out.Matches, "Service: "+svc.Name+"\n"+svc.Description)
			}
		}
	}
	return out
}

func executeKnowledgeSearch(tool string, args map[string]any) (contractx.ToolResult, error) {
	rawQuery, ok := args["query"]
	if !ok {
		return contractx.ToolResult{Tool: tool, Error: "query is required"}, nil
	}
	query, ok := rawQuery.(string)
	if !ok {
		return contractx.ToolResult{Tool: tool, Error: "query must be a string"}, nil
	}

	category := ""
	if rawCategory, ok := args["category"]; ok {
		if s, ok := rawCategory.(string); ok {
			category = strings.ToLower(strings.TrimSpace(s))
		}
	}

	return contractx.ToolResult{
		Tool:   tool,
		Result: SearchKnowledge(query, category),
	}, nil
}
