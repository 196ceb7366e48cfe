package llm

// PromptMaxChars bounds the document text sent to the model. Content past
// the boundary is invisible to the model; this is a hard cutoff that keeps
// cost and latency predictable, independent of what gets persisted.
const PromptMaxChars = 12000

// TruncationMarker is appended to the prompt when the document was cut.
const TruncationMarker = "\n\n[Document truncated due to length]"

var instructions = map[Length]string{
	LengthShort:  "You summarize documents. Produce a brief summary of 2-3 sentences capturing only the most essential points. Respond in plain prose.",
	LengthMedium: "You summarize documents. Produce a summary of 1-2 paragraphs covering the main points and key supporting details. Format the response as markdown.",
	LengthLong:   "You summarize documents. Produce a detailed, structured summary in markdown with headings and bullet points, covering all major sections, arguments, and conclusions.",
}

// Instruction returns the system instruction for a length mode.
func Instruction(length Length) string {
	if inst, ok := instructions[length]; ok {
		return inst
	}
	return instructions[LengthMedium]
}

// BuildPrompt caps the document text at PromptMaxChars and marks the cut.
func BuildPrompt(text string) string {
	runes := []rune(text)
	if len(runes) <= PromptMaxChars {
		return text
	}
	return string(runes[:PromptMaxChars]) + TruncationMarker
}
