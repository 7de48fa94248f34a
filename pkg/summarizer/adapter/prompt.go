package adapter

import (
	"fmt"
	"strings"
)

const stopSequence = "\n\nHuman"

const systemPrompt = `You condense one or more input texts into a single coherent answer to a question.
Be as detailed as the input allows and write in the style of a professional technical report.

Rules:
- Never open with a preamble or restate the task.
- Write Markdown and put key phrases, names and figures in bold.
- Open with an overview paragraph that carries the main points, then give the details.
- Weave conclusions into the narrative instead of appending them; do not start with a bullet list.
- Never use the phrases "input texts", "To answer the question" or "In summary".
- Wrap the final answer in XML tags: <Output><Summary>...</Summary></Output>.`

func userPrompt(question string, texts []string) string {
	var b strings.Builder

	b.WriteString("Here is the list of input texts:\n\n")
	b.WriteString("<input_texts>\n")
	b.WriteString(formatInputs(texts))
	b.WriteString("</input_texts>\n\n")

	b.WriteString("Review the input texts as a whole, summarize them into one or more paragraphs that follow their logic, ")
	b.WriteString("then check that no key information is missing before writing the final answer.\n\n")

	b.WriteString("Here is the input question:\n\n")
	b.WriteString("<input_question>\n")
	b.WriteString(question)
	b.WriteString("\n</input_question>")

	return b.String()
}

func formatInputs(texts []string) string {
	var b strings.Builder

	for i, text := range texts {
		fmt.Fprintf(&b, "<input_text_%d>%s</input_text_%d>\n\n", i+1, text, i+1)
	}

	return b.String()
}
