package prompts

// BrandKitInstruction is appended after the assembled retrieval context and
// tells the generation model exactly which four sections to produce. The
// numbered bold-labeled format is load-bearing: the output parser splits on
// these markers.
const BrandKitInstruction = `Based on the above information, provide the following in a structured format:
1. **Color Theme**: Suggest 3-5 colors (in hex codes) suitable for the brand. Explain why each color was chosen.
2. **Font Theme**: Suggest 2-3 fonts (for headings, body text, and accents).
3. **Tagline**: Suggest a tagline that captures the essence of the brand.
4. **Logo Concept**: Describe a logo concept aligned with the brand's industry and personality.`

// BrandKitContextHeader introduces the retrieval-augmented context block.
const BrandKitContextHeader = "The following is the description of a brand and its similar brands:"

// NoSimilarBrands is the sentinel rendered into the context when the vector
// index returns zero matches. It must stay distinguishable from a real brand
// entry so the generator is not misled by a fabricated neighbor.
const NoSimilarBrands = "No similar brands found in the index."

// MissingMetadata is substituted for any absent metadata field when
// rendering a retrieved match.
const MissingMetadata = "N/A"

// Logo prompt fragments. BuildLogoPrompt in the service package assembles
// these around the extracted colors, keywords, and concept summary.
const (
	// LogoColorFallback is used when no hex codes could be extracted from
	// the generated brand kit text.
	LogoColorFallback = "vibrant colors"

	// LogoNegativeConstraints keeps the image model from rendering text or
	// backgrounds into the symbol.
	LogoNegativeConstraints = "Do NOT include any text, brand name, or letters inside the logo. " +
		"Only use abstract shapes, icons, or symbols that represent the brand. " +
		"The logo should be a single symbol or icon (no text), no background."

	// LogoClosingConstraints reiterates the no-text rule and the delivery
	// requirements. Image models drift without the repetition.
	LogoClosingConstraints = "Strictly avoid including any text or letters inside the logo. " +
		"Just a simple, memorable visual asset. " +
		"Ensure the logo is iconic, recognizable, and scalable for various branding needs."
)
