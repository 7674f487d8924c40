// Package vision — fixed prompts for classification, transcription,
// and description.
package vision

// classifyPrompt asks for exactly one word. The reply is parsed
// case-insensitively; anything else falls back to "document".
const classifyPrompt = `Analyze this image and classify it into one of two categories:

1. "document" - if it contains:
   - Text documents (letters, forms, contracts, etc.)
   - Tables or spreadsheets
   - Charts, graphs, or statistics
   - Technical diagrams
   - Screenshots with text

2. "photo" - if it contains:
   - Photographs of people, places, or objects
   - Artwork or illustrations
   - Natural scenes
   - Images without significant text content

Respond with ONLY ONE WORD: either "document" or "photo".`

const transcribeSystem = `You are an expert document transcription assistant. Your task is to:
1. Extract ALL text from the document image with 100% accuracy
2. Preserve the document structure using Markdown formatting
3. Maintain original formatting (headings, lists, tables, emphasis)
4. Keep all numbers, dates, and special characters exactly as shown
5. Preserve line breaks and paragraph structure`

const transcribePrompt = `Transcribe this document image to Markdown format.

Requirements:
- Use ## for main headings, ### for subheadings
- Convert tables to Markdown table format
- Use **bold** and *italic* where appropriate
- Preserve bullet points and numbered lists
- Include all text verbatim - do not summarize or paraphrase
- If text is unclear, include [unclear] marker

Output the transcription in valid Markdown format.`

const describeSystem = `You are an expert image analyst. Your task is to provide detailed, accurate descriptions of images.`

const describePrompt = `Describe this image in detail.

Include:
- Main subjects and their characteristics
- Setting and environment
- Colors, lighting, and mood
- Composition and notable elements
- Any text or symbols visible

Provide a clear, structured description in Markdown format.`
