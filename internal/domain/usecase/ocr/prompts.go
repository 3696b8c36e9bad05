package ocr

import (
	"strings"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

const detectRegionsInstruction = `Identify all major blocks of text in this image.

Grouping Rule: Do not separate individual paragraphs if they are clearly one after another.
Group adjacent paragraphs into a single logical region. Only create separate regions when
there are clear, wide separations.

Coordinates must be in normalized range (0 to 1000).

Return ONLY valid JSON array with objects containing: description, ymin, xmin, ymax, xmax
No markdown, no code blocks, just raw JSON.`

const extractTextHeader = `Perform OCR on the provided image following the sequence of regions below.
Return ONLY the extracted text, separated by double newlines between regions.
Do not include any explanations, markdown, or metadata.

Regions to process (in order):
`

const extractTextFooter = `

Extract text exactly as it appears, maintaining formatting where possible.`

// extractionInstruction lists regions in the order given
func extractionInstruction(regions []entity.Region) string {
	var b strings.Builder
	b.WriteString(extractTextHeader)
	for i, r := range regions {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.String())
	}
	b.WriteString(extractTextFooter)
	return b.String()
}
