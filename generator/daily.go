package generator

import (
	"context"
	"fmt"
	"log"

	"github.com/foxhands/generationTextSerega/catalog"
	"github.com/foxhands/generationTextSerega/storage"
)

// DailyResult reports one batch run: the download links of every saved
// file and the topic/language pairs that failed.
type DailyResult struct {
	Saved  []string
	Failed []string
}

// GenerateDaily produces the daily publication set: one article per
// category per language, using the first topic of each category. Every
// successful article is saved in all formats; failures are collected and
// do not stop the run.
func GenerateDaily(ctx context.Context, g *Generator, cat *catalog.Catalog, store *storage.Store) DailyResult {
	var res DailyResult

	for _, language := range cat.Languages() {
		for _, category := range cat.Categories(language) {
			topics, ok := cat.Topics(category, language)
			if !ok || len(topics) == 0 {
				continue
			}
			topic := topics[0]

			article, err := g.Generate(ctx, topic, language, category)
			if err != nil {
				log.Printf("✗ %s (%s): %v", topic, language, err)
				res.Failed = append(res.Failed, fmt.Sprintf("%s (%s)", topic, language))
				continue
			}

			links, err := store.Save(ctx, article)
			if err != nil {
				log.Printf("✗ %s (%s): %v", topic, language, err)
				res.Failed = append(res.Failed, fmt.Sprintf("%s (%s)", topic, language))
				continue
			}

			res.Saved = append(res.Saved, links.TXT, links.Markdown, links.HTML)
			log.Printf("✓ %s (%s)", topic, language)
		}
	}

	return res
}
