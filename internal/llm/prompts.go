// ABOUTME: Prompt builders for response, rationale, and follow-up enhancement
// ABOUTME: Products are rendered as "- name: description (Price: $x)" lines
package llm

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/harper/recommend/internal/models"
)

func productLines(products []models.Product) string {
	lines := make([]string, len(products))
	for i, p := range products {
		lines[i] = fmt.Sprintf("- %s: %s (Price: $%s)", p.Name, p.Description, strconv.FormatFloat(p.Price, 'f', -1, 64))
	}
	return strings.Join(lines, "\n")
}

func specBlocks(products []models.Product) string {
	var b strings.Builder
	for _, p := range products {
		if len(p.Specs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\nSpecs for %s:\n", p.Name)
		for _, k := range p.SpecKeys() {
			fmt.Fprintf(&b, "- %s: %s\n", k, p.Specs[k])
		}
	}
	return b.String()
}

func responsePrompt(query string, products []models.Product, baseline string) string {
	return fmt.Sprintf(`User Query: "%s"

Available Products:
%s

Initial Response: "%s"

Generate an improved, detailed response that:
1. Directly addresses the user's query
2. Highlights key features of the top products
3. Explains why these products match the user's needs
4. Uses a friendly, helpful tone

Response:`, query, productLines(products), baseline)
}

func rationalePrompt(query string, products []models.Product, baseline []string) string {
	points := make([]string, len(baseline))
	for i, r := range baseline {
		points[i] = "- " + r
	}

	return fmt.Sprintf(`User Query: "%s"

Top Products:
%s

Initial Rationale:
%s

Generate 4-6 improved rationale points that:
1. Explain specifically why these products match the query
2. Highlight common features among the products
3. Compare these products to alternatives
4. Use clear, concise language

Return just the bullet points without any introductory text. Each point should start with a '-'.`,
		query, productLines(products), strings.Join(points, "\n"))
}

func followupPrompt(originalQuery, followupQuery string, products []models.Product) string {
	return fmt.Sprintf(`Original Query: "%s"
Follow-up Query: "%s"

Available Products:
%s

Additional Product Details:
%s

Generate a detailed and helpful response to the follow-up query that:
1. Answers the specific follow-up question
2. References the original query for context
3. Uses actual product specifications when relevant
4. Provides a direct, clear answer

Your response should be conversational but informative, focusing on addressing the user's specific follow-up question.`,
		originalQuery, followupQuery, productLines(products), specBlocks(products))
}

// ParseBullets keeps lines that start with "-", drops the marker and the
// character after it, and trims. Bullets left empty are skipped.
func ParseBullets(content string) []string {
	var bullets []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "-")
		if !ok {
			continue
		}
		if _, size := utf8.DecodeRuneInString(rest); size > 0 {
			rest = rest[size:]
		}
		if text := strings.TrimSpace(rest); text != "" {
			bullets = append(bullets, text)
		}
	}
	return bullets
}
