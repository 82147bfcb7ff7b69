// Package content holds the fixed copy tables: prompt templates, fallback
// copy and tone recommendations. Every table is a total function over the
// closed selection enums; a gap is a programming error caught at init.
package content

import (
	"fmt"
	"strings"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

const (
	phProductName    = "{product_name}"
	phCategory       = "{category}"
	phFeatures       = "{features}"
	phTargetAudience = "{target_audience}"
)

func init() {
	if err := checkTables(); err != nil {
		panic(err)
	}
}

// Template returns the raw prompt instructions with placeholders intact.
func Template(sel domain.Selection) string {
	return promptTemplates[sel.ContentType][sel.Tone][sel.Language]
}

// Prompt interpolates the product into the prompt template. Features are
// passed through unchanged.
func Prompt(sel domain.Selection, product domain.Product) string {
	return interpolate(Template(sel), product, product.Features)
}

// Fallback returns the pre-written copy for the selection with the product
// attributes substituted.
func Fallback(sel domain.Selection, product domain.Product) string {
	return interpolate(fallbackCopy[sel.ContentType][sel.Tone][sel.Language], product, product.FeatureList())
}

func Recommendation(contentType domain.ContentType, tone domain.Tone) string {
	return recommendations[contentType][tone]
}

func interpolate(tmpl string, product domain.Product, features string) string {
	return strings.NewReplacer(
		phProductName, product.Name,
		phCategory, product.Category,
		phFeatures, features,
		phTargetAudience, product.TargetAudience,
	).Replace(tmpl)
}

func checkTables() error {
	for _, ct := range domain.AllContentTypes() {
		for _, tone := range domain.AllTones() {
			if strings.TrimSpace(recommendations[ct][tone]) == "" {
				return fmt.Errorf("content: missing recommendation for %s/%s", ct, tone)
			}
			for _, lang := range domain.AllLanguages() {
				if !strings.Contains(promptTemplates[ct][tone][lang], phProductName) {
					return fmt.Errorf("content: missing prompt template for %s/%s/%s", ct, tone, lang)
				}
				if !strings.Contains(fallbackCopy[ct][tone][lang], phProductName) {
					return fmt.Errorf("content: missing fallback copy for %s/%s/%s", ct, tone, lang)
				}
			}
		}
	}
	return nil
}
